package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database for the feature suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb creates the shared database once and migrates models. Models must be
// listed parents first; ClearDB deletes in reverse order.
func NewDb(models []any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDbMock.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB removes every row and resets the id sequences.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		model := d.models[i]

		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in table.
func (d *Db) Count(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
