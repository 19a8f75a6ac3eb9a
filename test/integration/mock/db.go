package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the BDD suite. The
// connection pool is capped at one connection so every scenario sees the same
// memory database.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared test database and migrates the given models. The
// map key is the table name, used by the db assertion steps.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	// TranslateError is required so unique-index violations surface as
	// gorm.ErrDuplicatedKey, the same as against postgres.
	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDb.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDb
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
		if err := d.DbConn.Migrator().DropTable(model); err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// Reset deletes all rows from every migrated table. Called before each
// scenario so scenarios stay independent.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the model registered for the given table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
