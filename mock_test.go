package relaypager

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type tUser struct {
	ID   int
	Name string
}

func (tUser) TableName() string { return "users" }

type tUserSource struct{}

func (tUserSource) Table() string { return "users" }
func (tUserSource) PrimaryKeyColumn() string { return "id" }
func (tUserSource) TypeName() string { return "User" }
func (tUserSource) PrimaryKeyOf(u tUser) any { return u.ID }

var _ Source[tUser] = tUserSource{}

func newGORMMySQLMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return db.Debug(), mock
}

func newGORMPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return db.Debug(), mock
}

// forEachDialect runs fn as a subtest against both supported dialect mocks.
func forEachDialect(t *testing.T, name string, fn func(t *testing.T, db *gorm.DB, mock sqlmock.Sqlmock)) {
	t.Helper()

	dialects := []struct {
		dialect string
		mockFn  func(*testing.T) (*gorm.DB, sqlmock.Sqlmock)
	}{
		{"mysql", newGORMMySQLMock},
		{"postgres", newGORMPostgresMock},
	}

	for _, d := range dialects {
		t.Run(d.dialect+" "+name, func(t *testing.T) {
			db, mock := d.mockFn(t)
			fn(t, db, mock)
		})
	}
}

func mustEncodeCursor(t *testing.T, typeName string, rowID any) string {
	t.Helper()

	token, err := EncodeCursor(typeName, rowID)
	if err != nil {
		t.Fatalf("encode cursor: %v", err)
	}

	return token
}

func ptr[T any](v T) *T {
	return &v
}
