package constants

import (
	"database/sql/driver"
	"fmt"
)

// MemberRole mirrors the Postgres ENUM 'member_role'
type MemberRole string

const (
	RolePending   MemberRole = "pending"
	RoleStudent   MemberRole = "student"
	RoleModerator MemberRole = "moderator"
	RoleAdmin     MemberRole = "admin"
)

// Stringer ­– convenient for fmt / logs
func (r MemberRole) String() string { return string(r) }

/* ---------- DB adapters so database/sql scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *MemberRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = MemberRole(v)
	case []byte:
		*r = MemberRole(v)
	default:
		return fmt.Errorf("MemberRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r MemberRole) Value() (driver.Value, error) { return string(r), nil }
