//go:build native_sqlite

package sqlitedriver

import (
	"database/sql/driver"
	"fmt"

	"modernc.org/sqlite"
)

// DriverName is registered by modernc.org/sqlite itself, functions are added
// to every connection it opens.
const DriverName = "sqlite"

func init() {
	err := sqlite.RegisterScalarFunction("is_hex_color", 1, func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		s, _ := args[0].(string)
		return isHexColor(s), nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to register is_hex_color: %w", err))
	}
}
