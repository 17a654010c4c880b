package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"devsync/app/headspin"
	"devsync/app/models"
	"devsync/app/repo"
)

// SnapshotSource provides the two upstream snapshots. Satisfied by
// *headspin.Client and by test stubs.
type SnapshotSource interface {
	FetchDevices(ctx context.Context) (*headspin.DeviceList, error)
	FetchTeamDevices(ctx context.Context) (*headspin.TeamList, error)
}

// SyncService reconciles the inventory tables against one API snapshot
// per run: resolve identities, group box bundles, diff against the
// database and apply everything in a single transaction with ledger
// entries for every structural change.
type SyncService struct {
	db     *gorm.DB
	source SnapshotSource
	log    zerolog.Logger
}

func NewSyncService(db *gorm.DB, source SnapshotSource, log zerolog.Logger) *SyncService {
	return &SyncService{db: db, source: source, log: log}
}

type RunSummary struct {
	RunID   string
	Devices int
	Added   int
	Removed int
	Skipped bool // snapshot unavailable, nothing applied
}

// Run executes one synchronization cycle. An unusable device snapshot
// skips the cycle without touching the database; any failure during
// apply rolls the whole transaction back.
func (s *SyncService) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.NewString()
	log := s.log.With().Str("run_id", runID).Logger()

	log.Info().Msg("fetching device data from API")
	deviceList, err := s.source.FetchDevices(ctx)
	if err != nil {
		log.Error().Err(err).Msg("device snapshot unavailable, skipping cycle")
		return &RunSummary{RunID: runID, Skipped: true}, nil
	}
	if deviceList == nil || len(deviceList.Devices) == 0 {
		log.Warn().Msg("no devices found")
		return &RunSummary{RunID: runID, Skipped: true}, nil
	}

	teamList, err := s.source.FetchTeamDevices(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("team snapshot unavailable, continuing without team data")
		teamList = nil
	}

	boxes := GroupAVBoxes(deviceList.Devices)

	snapshotIDs := make(IDSet, len(deviceList.Devices))
	for i := range deviceList.Devices {
		snapshotIDs[UniqueDeviceID(&deviceList.Devices[i])] = struct{}{}
	}
	persistedIDs, err := repo.NewInventoryRepository(s.db.WithContext(ctx)).ListUDIDs()
	if err != nil {
		return nil, fmt.Errorf("list persisted udids: %w", err)
	}
	added, removed := Diff(snapshotIDs, NewIDSet(persistedIDs))

	if len(added) > 0 {
		log.Info().Int("count", len(added)).Msg("new devices to be added")
	}
	if len(removed) > 0 {
		log.Info().Int("count", len(removed)).Msg("devices to be removed")
	}
	log.Info().Int("count", len(deviceList.Devices)).Msg("processing devices")

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyDiff(tx, deviceList, teamList, boxes, added, removed)
	})
	if err != nil {
		log.Error().Err(err).Msg("synchronization failed, all changes rolled back")
		return nil, err
	}

	log.Info().Msg("database synchronized")
	return &RunSummary{
		RunID:   runID,
		Devices: len(deviceList.Devices),
		Added:   len(added),
		Removed: len(removed),
	}, nil
}

func applyDiff(tx *gorm.DB, deviceList *headspin.DeviceList, teamList *headspin.TeamList, boxes map[string]*models.AVBoxMapping, added, removed IDSet) error {
	inventory := repo.NewInventoryRepository(tx)
	avboxes := repo.NewAVBoxRepository(tx)
	ledger := repo.NewLedgerRepository(tx)

	for id := range removed {
		rec, err := inventory.FindByUDID(id)
		if err != nil {
			return fmt.Errorf("load %s for removal: %w", id, err)
		}
		if rec == nil {
			continue
		}
		details := ledgerDetails{Model: rec.Model, Type: rec.DeviceType}
		box, err := avboxes.FindByDUT(id)
		if err != nil {
			return err
		}
		if box != nil {
			details.Companions = &ledgerCompanions{Camera: box.CameraDevice, Control: box.Control}
		}
		if err := ledger.Append(&models.DeviceLedger{
			UDID:      id,
			Status:    models.LedgerRemoved,
			Timestamp: time.Now().UTC(),
			Details:   details.encode(),
		}); err != nil {
			return err
		}
		if err := inventory.Delete(rec); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
	}

	for i := range deviceList.Devices {
		d := &deviceList.Devices[i]
		// Companion-only devices (cameras, controls) never enter the
		// inventory table.
		if d.AVBoxInfo != nil && d.AVBoxInfo.Usage != usageDUT {
			continue
		}
		rec := inventoryRecord(d, teamList)
		if err := inventory.Upsert(rec); err != nil {
			return fmt.Errorf("upsert %s: %w", rec.UDID, err)
		}
		if added.Has(rec.UDID) {
			details := ledgerDetails{Model: d.Model, Type: EffectiveDeviceType(d)}
			if box, ok := boxes[d.DeviceAddress]; ok {
				details.Companions = &ledgerCompanions{Camera: box.CameraDevice, Control: box.Control}
			}
			if err := ledger.Append(&models.DeviceLedger{
				UDID:      rec.UDID,
				Status:    models.LedgerAdded,
				Timestamp: time.Now().UTC(),
				Details:   details.encode(),
			}); err != nil {
				return err
			}
		}
	}

	for _, box := range boxes {
		if err := avboxes.Upsert(box); err != nil {
			return fmt.Errorf("upsert avbox %s: %w", box.DUT, err)
		}
	}
	return nil
}

// inventoryRecord normalizes a raw device into its persisted form.
// Every field is assigned; upserts overwrite the whole row.
func inventoryRecord(d *headspin.RawDevice, teamList *headspin.TeamList) *models.DeviceInventory {
	return &models.DeviceInventory{
		DeviceType:  EffectiveDeviceType(d),
		Model:       d.Model,
		DeviceSKUs:  d.DeviceSKUs.Join(),
		UDID:        UniqueDeviceID(d),
		HostName:    d.Hostname,
		OSVersion:   d.OSVersion,
		Location:    fmt.Sprintf("%s, %s", d.HostCity, d.HostCountry),
		DeviceNotes: d.DeviceNote,
		Teams:       strings.Join(DeviceTeams(d.DeviceAddress, teamList), ", "),
		IsAVBox:     d.AVBoxInfo != nil,
	}
}

type ledgerCompanions struct {
	Camera  string `json:"camera"`
	Control string `json:"control"`
}

type ledgerDetails struct {
	Model      string            `json:"model"`
	Type       string            `json:"type"`
	Companions *ledgerCompanions `json:"companions,omitempty"`
}

func (d ledgerDetails) encode() string {
	b, _ := json.Marshal(d)
	return string(b)
}
