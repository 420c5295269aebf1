//go:build !native_sqlite

package sqlitedriver

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

const DriverName = "sqlite3_gmapstool"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc("is_hex_color", isHexColor, true); err != nil {
				return fmt.Errorf("failed to register is_hex_color: %w", err)
			}
			if _, err := conn.Exec("PRAGMA foreign_keys = ON", nil); err != nil {
				return fmt.Errorf("failed to enable foreign keys: %w", err)
			}
			return nil
		},
	})
}
