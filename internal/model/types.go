// internal/model/types.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// OrganizationType classifies the paying organization.
type OrganizationType string

const (
	OrgTypeSchool     OrganizationType = "school"
	OrgTypeCollege    OrganizationType = "college"
	OrgTypeUniversity OrganizationType = "university"
	OrgTypeRecruiter  OrganizationType = "recruiter"
)

// MemberType is the kind of member a seat or invitation targets.
type MemberType string

const (
	MemberTypeEducator MemberType = "educator"
	MemberTypeStudent  MemberType = "student"
)

// StringList is a custom type stored as a Postgres text[] column.
// It implements the sql.Scanner and driver.Valuer interfaces.
type StringList []string

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = []string{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, l)
	}

	trimmed := strings.Trim(str, "{}")
	if trimmed == "" {
		*l = []string{}
		return nil
	}
	*l = strings.Split(trimmed, ",")
	return nil
}

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(l, ",") + "}", nil
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
