package biometrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkravets/biogate/internal/common"
	"github.com/mkravets/biogate/internal/dbx"
	"github.com/mkravets/biogate/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const biometricColumns = `right_thumb_finger, right_index_finger, right_middle_finger, right_ring_finger, right_short_finger,
		left_thumb_finger, left_index_finger, left_middle_finger, left_ring_finger, left_short_finger`

func (r *PostgresRepository) FindByKey(ctx context.Context, key string) (*models.Biometric, error) {
	query :=
		`SELECT b.id, b.user_id, ` + biometricColumns + `, b.created_at,
		 u.id, u.email, u.name, u.password_hash, u.created_at
		 FROM biometric_keys k
		 JOIN biometrics b ON b.id = k.biometric_id
		 LEFT JOIN users u ON u.id = b.user_id
		 WHERE k.key = $1
		 `

	b := &models.Biometric{}
	slots := make([]any, 0, 17)
	slots = append(slots, &b.ID, &b.UserID,
		&b.Keys.RightThumb, &b.Keys.RightIndex, &b.Keys.RightMiddle, &b.Keys.RightRing, &b.Keys.RightShort,
		&b.Keys.LeftThumb, &b.Keys.LeftIndex, &b.Keys.LeftMiddle, &b.Keys.LeftRing, &b.Keys.LeftShort,
		&b.CreatedAt)

	var ownerID, ownerEmail, ownerName, ownerHash sql.NullString
	var ownerCreated sql.NullTime
	slots = append(slots, &ownerID, &ownerEmail, &ownerName, &ownerHash, &ownerCreated)

	err := r.db.QueryRowContext(ctx, query, key).Scan(slots...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if ownerID.Valid {
		b.Owner = &models.User{
			ID:           ownerID.String,
			Email:        ownerEmail.String,
			Name:         ownerName.String,
			PasswordHash: ownerHash.String,
			CreatedAt:    ownerCreated.Time,
		}
	}

	return b, nil
}

func (r *PostgresRepository) ExistsAnyKey(ctx context.Context, keys models.BiometricKeys) (bool, error) {
	query :=
		`SELECT EXISTS (
		 SELECT 1 FROM biometric_keys
		 WHERE key IN ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 )`

	slots := keys.Slots()
	args := make([]any, len(slots))
	for i, k := range slots {
		args[i] = k
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, keys models.BiometricKeys) (*models.Biometric, error) {

	b := &models.Biometric{
		ID:     uuid.NewString(),
		UserID: userID,
		Keys:   keys,
	}

	// The record row and the key-index rows commit atomically: the primary
	// key on biometric_keys.key is the store-level guarantee that closes
	// the check-then-create race between concurrent enrollments.
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		insertRecord :=
			`INSERT INTO biometrics (id, user_id, ` + biometricColumns + `)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 RETURNING created_at
			 `

		slots := keys.Slots()
		args := make([]any, 0, 12)
		args = append(args, b.ID, userID)
		for _, k := range slots {
			args = append(args, k)
		}

		if err := tx.QueryRowContext(ctx, insertRecord, args...).Scan(&b.CreatedAt); err != nil {
			return err
		}

		insertKeys :=
			`INSERT INTO biometric_keys (key, biometric_id)
			 VALUES ($1, $11), ($2, $11), ($3, $11), ($4, $11), ($5, $11),
			 ($6, $11), ($7, $11), ($8, $11), ($9, $11), ($10, $11)
			 `

		keyArgs := make([]any, 0, 11)
		for _, k := range slots {
			keyArgs = append(keyArgs, k)
		}
		keyArgs = append(keyArgs, b.ID)

		if _, err := tx.ExecContext(ctx, insertKeys, keyArgs...); err != nil {
			return err
		}

		ownerQuery :=
			`SELECT id, email, name, password_hash, created_at FROM users
			 WHERE id = $1
			 `

		owner := &models.User{}
		err := tx.QueryRowContext(ctx, ownerQuery, userID).
			Scan(&owner.ID, &owner.Email, &owner.Name, &owner.PasswordHash, &owner.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return err
		}

		b.Owner = owner
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				// A duplicate key value and a second enrollment for the same
				// user both raise 23505; only the key-table constraint means
				// a key conflict.
				if strings.HasPrefix(pgErr.ConstraintName, "biometric_keys") {
					return nil, common.ErrorConflict
				}
				return nil, common.ErrorAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				return nil, common.ErrorNotFound
			}
		}
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}
