package mysql

import (
	"fmt"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'jo@example.com' for key 'idx_atendimentos_email'"}
	if !isUniqueViolation(dup) {
		t.Fatalf("expected ER_DUP_ENTRY to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert atendimento: %w", dup)) {
		t.Fatalf("expected wrapped ER_DUP_ENTRY to be detected")
	}

	other := &gomysql.MySQLError{Number: 1146, Message: "Table 'atendimentos' doesn't exist"}
	if isUniqueViolation(other) {
		t.Fatalf("unrelated mysql error misread as unique violation")
	}
	if isUniqueViolation(fmt.Errorf("plain error")) {
		t.Fatalf("plain error misread as unique violation")
	}
}
