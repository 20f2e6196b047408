package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProofStatus represents the review state of a submitted payment proof
type ProofStatus int

const (
	ProofStatusPending  ProofStatus = 0
	ProofStatusApproved ProofStatus = 1
	ProofStatusRejected ProofStatus = 2
)

func (s ProofStatus) String() string {
	return [...]string{"Pending", "Approved", "Rejected"}[s]
}

func (s ProofStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ProofStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ProofStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = ProofStatusPending
	case "Approved":
		*s = ProofStatusApproved
	case "Rejected":
		*s = ProofStatusRejected
	}
	return nil
}

func (s ProofStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ProofStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ProofStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ProofStatus(v)
	case int:
		*s = ProofStatus(v)
	}
	return nil
}
