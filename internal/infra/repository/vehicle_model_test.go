//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"autoparts-pos/internal/domain/vehicle"
	"autoparts-pos/internal/infra"
	"autoparts-pos/internal/pkg/errs"
	"autoparts-pos/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(append([]any{ctx, sql}, args...)...)
	return called.Get(0).(pgx.Row)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *pgtype.UUID:
			*p = r.values[i].(pgtype.UUID)
		case *string:
			*p = r.values[i].(string)
		case *int32:
			*p = r.values[i].(int32)
		}
	}
	return nil
}

func newTestRepository(db DBTX, id uuid.UUID) *VehicleModelRepository {
	repo := NewVehicleModelRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo.newID = func() uuid.UUID { return id }
	return repo
}

func TestVehicleModelRepository_CreateOrGet(t *testing.T) {
	newID := uuid.New()
	existingID := uuid.New()

	tests := []struct {
		name     string
		row      fakeRow
		want     vehicle.Model
		wantKind infra.ErrorKind
	}{
		{
			name: "inserted row",
			row:  fakeRow{values: []any{pgconv.UUIDToPgtype(newID), "TOYOTA", "YARIS", int32(2018)}},
			want: vehicle.Model{ID: newID.String(), Brand: "TOYOTA", Model: "YARIS", Year: 2018},
		},
		{
			name: "existing row on conflict",
			row:  fakeRow{values: []any{pgconv.UUIDToPgtype(existingID), "TOYOTA", "YARIS", int32(2018)}},
			want: vehicle.Model{ID: existingID.String(), Brand: "TOYOTA", Model: "YARIS", Year: 2018},
		},
		{
			name:     "no rows",
			row:      fakeRow{err: pgx.ErrNoRows},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "unique violation",
			row:      fakeRow{err: &pgconn.PgError{Code: pgconv.CodeUniqueViolation}},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "check violation",
			row:      fakeRow{err: &pgconn.PgError{Code: pgconv.CodeCheckViolation}},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "connection error",
			row:      fakeRow{err: assert.AnError},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, createOrGetVehicleModelSQL,
				pgconv.UUIDToPgtype(newID), "TOYOTA", "YARIS", int32(2018)).Return(tt.row)

			repo := newTestRepository(db, newID)
			got, err := repo.CreateOrGet(context.Background(), "TOYOTA", "YARIS", 2018)

			if tt.wantKind != "" {
				require.Error(t, err)
				var ae infra.AdapterError
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, tt.wantKind, ae.Kind, "got %v", err)
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
				assert.Equal(t, vehicle.Model{}, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			db.AssertExpectations(t)
		})
	}
}
