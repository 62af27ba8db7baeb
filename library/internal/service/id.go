package service

import "github.com/google/uuid"

func newUUID() string {
	return uuid.New().String()
}

// validRecordID reports whether id can name a borrow record at all.
func validRecordID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
