// Package report renders the post-sync inspection: table counts, every
// browser-category record, and the most recent rows per table. It is
// presentation only and never feeds back into reconciliation.
package report

import (
	"fmt"
	"io"

	"gorm.io/gorm"

	"devsync/app/models"
	"devsync/app/repo"
)

type Reporter struct {
	inventory *repo.InventoryRepository
	avboxes   *repo.AVBoxRepository
	ledger    *repo.LedgerRepository
	limit     int
}

func NewReporter(db *gorm.DB, limit int) *Reporter {
	return &Reporter{
		inventory: repo.NewInventoryRepository(db),
		avboxes:   repo.NewAVBoxRepository(db),
		ledger:    repo.NewLedgerRepository(db),
		limit:     limit,
	}
}

func (r *Reporter) Render(w io.Writer) error {
	invCount, err := r.inventory.Count()
	if err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	boxCount, err := r.avboxes.Count()
	if err != nil {
		return fmt.Errorf("count avbox mappings: %w", err)
	}
	ledgerCount, err := r.ledger.Count()
	if err != nil {
		return fmt.Errorf("count ledger: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("Total records in device_inventory: %d", invCount)))
	fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("Total records in avbox_mapping: %d", boxCount)))
	fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("Total records in device_ledger: %d", ledgerCount)))

	browsers, err := r.inventory.ListByType("browser")
	if err != nil {
		return fmt.Errorf("list browsers: %w", err)
	}
	fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("Total browser devices: %d", len(browsers))))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Browser Devices"))
	if len(browsers) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No browser devices found."))
	}
	for i := range browsers {
		printInventory(w, &browsers[i])
	}

	recent, err := r.inventory.Recent(r.limit)
	if err != nil {
		return fmt.Errorf("recent inventory: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%d Most Recent device_inventory Records", r.limit)))
	if len(recent) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No entries found in device_inventory."))
	}
	for i := range recent {
		printInventory(w, &recent[i])
	}

	recentBoxes, err := r.avboxes.Recent(r.limit)
	if err != nil {
		return fmt.Errorf("recent avbox mappings: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%d Most Recent avbox_mapping Records", r.limit)))
	if len(recentBoxes) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No entries found in avbox_mapping."))
	}
	for i := range recentBoxes {
		printAVBox(w, &recentBoxes[i])
	}

	recentLedger, err := r.ledger.Recent(r.limit)
	if err != nil {
		return fmt.Errorf("recent ledger: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render(fmt.Sprintf("%d Most Recent device_ledger Records", r.limit)))
	if len(recentLedger) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("No entries found in device_ledger."))
	}
	for i := range recentLedger {
		printLedger(w, &recentLedger[i])
	}
	return nil
}

func printInventory(w io.Writer, d *models.DeviceInventory) {
	fmt.Fprintln(w, rowStyle.Render(fmt.Sprintf(
		"type=%s model=%q udid=%s host=%s os=%s location=%q teams=%q avbox=%t",
		d.DeviceType, d.Model, d.UDID, d.HostName, d.OSVersion, d.Location, d.Teams, d.IsAVBox)))
}

func printAVBox(w io.Writer, m *models.AVBoxMapping) {
	fmt.Fprintln(w, rowStyle.Render(fmt.Sprintf(
		"dut=%s type=%s camera=%s control=%s notes=%q",
		m.DUT, m.DeviceType, m.CameraDevice, m.Control, m.DeviceNotes)))
}

func printLedger(w io.Writer, e *models.DeviceLedger) {
	fmt.Fprintln(w, rowStyle.Render(fmt.Sprintf(
		"%s udid=%s status=%s details=%s",
		e.Timestamp.Format("2006-01-02 15:04"), e.UDID, e.Status, e.Details)))
}
