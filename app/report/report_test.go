package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devsync/app/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.DeviceInventory{}, &models.AVBoxMapping{}, &models.DeviceLedger{}))
	return gdb
}

func TestRender(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.DeviceInventory{UDID: "u1", DeviceType: "browser", Model: "Chrome"}).Error)
	require.NoError(t, db.Create(&models.DeviceInventory{UDID: "u2", DeviceType: "ios", Model: "iPhone"}).Error)
	require.NoError(t, db.Create(&models.AVBoxMapping{DUT: "d1", CameraDevice: "cam"}).Error)
	require.NoError(t, db.Create(&models.DeviceLedger{UDID: "u1", Status: "added", Timestamp: time.Now(), Details: "{}"}).Error)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(db, 10).Render(&buf))
	out := buf.String()

	assert.Contains(t, out, "Total records in device_inventory: 2")
	assert.Contains(t, out, "Total records in avbox_mapping: 1")
	assert.Contains(t, out, "Total records in device_ledger: 1")
	assert.Contains(t, out, "Total browser devices: 1")
	assert.Contains(t, out, "udid=u1")
	assert.Contains(t, out, "dut=d1")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(openTestDB(t), 5).Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "No browser devices found.")
	assert.Contains(t, out, "No entries found in device_inventory.")
}
