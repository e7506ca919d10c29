package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockMySQL(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestGetTableColumnsMySQL(t *testing.T) {
	db, mock := newMockMySQL(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "VARCHAR(64)", "NO", "PRI", nil, "").
		AddRow("Display_Name", "VARCHAR(255)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `content_items`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "content_items")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field, "fields are normalized to lowercase")
	assert.Equal(t, "varchar(64)", columns[0].Type)
	assert.Equal(t, "display_name", columns[1].Field)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyTableMySQL(t *testing.T) {
	db, mock := newMockMySQL(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "varchar(64)", "NO", "PRI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `content_items`").WillReturnRows(rows)

	missing, err := VerifyTable(db, "content_items", []string{"id", "edible"})
	require.NoError(t, err)
	assert.Equal(t, []string{"edible"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
