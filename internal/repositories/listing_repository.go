package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"roomshare/internal/models"
)

var ErrListingNotFound = errors.New("listing not found")

const listingColumns = `id, title, description, category, city, county, contact_name, contact_email, contact_info, telegram_username, views, created_at`

// ListingRepository persists listings over database/sql. Driver is
// "mysql" or "postgres" and decides placeholder style and how the
// generated id is read back.
type ListingRepository struct {
	DB     *sql.DB
	Driver string
}

// Create stores the listing and assigns id and created_at. created_at
// is set once, in UTC, and is never updated afterwards; it is the sole
// ordering and delta key.
func (r *ListingRepository) Create(ctx context.Context, l models.Listing, ownerToken string) (models.Listing, error) {
	l.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	l.Views = 0

	query := rebind(r.Driver, `
    INSERT INTO listings (title, description, category, city, county, contact_name, contact_email, contact_info, telegram_username, owner_token, views, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	args := []interface{}{
		l.Title, l.Description, l.Category, l.City, l.County,
		l.ContactName, l.ContactEmail, l.ContactInfo, l.TelegramUsername,
		ownerToken, l.Views, l.CreatedAt,
	}

	if r.Driver == "postgres" {
		err := r.DB.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&l.ID)
		if err != nil {
			return models.Listing{}, err
		}
		return l, nil
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Listing{}, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Listing{}, err
	}
	l.ID = lastID
	return l, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (models.Listing, error) {
	query := rebind(r.Driver, fmt.Sprintf(`SELECT %s FROM listings WHERE id = ?`, listingColumns))
	l, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

// GetListings returns listings newest first. Empty city means all
// cities; limit <= 0 means no limit.
func (r *ListingRepository) GetListings(ctx context.Context, city string, limit int) ([]models.Listing, error) {
	query := fmt.Sprintf(`SELECT %s FROM listings`, listingColumns)
	var args []interface{}
	if city != "" {
		query += ` WHERE city = ?`
		args = append(args, city)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, rebind(r.Driver, query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

// GetNewListings returns rows with created_at strictly greater than
// since, newest first. This is the delta-pull query.
func (r *ListingRepository) GetNewListings(ctx context.Context, city string, since time.Time) ([]models.Listing, error) {
	query := fmt.Sprintf(`SELECT %s FROM listings WHERE created_at > ?`, listingColumns)
	args := []interface{}{since}
	if city != "" {
		query += ` AND city = ?`
		args = append(args, city)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, rebind(r.Driver, query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

// Delete removes the row permanently. There is no soft-delete state.
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, rebind(r.Driver, `DELETE FROM listings WHERE id = ?`), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// OwnerTokenByID fetches the delete-authorization token stored at
// creation. Tokens never leave the server after the create response.
func (r *ListingRepository) OwnerTokenByID(ctx context.Context, id int64) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx, rebind(r.Driver, `SELECT owner_token FROM listings WHERE id = ?`), id).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrListingNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// IncrementViewOnce bumps the view counter at most once per
// (listing, viewerKey) pair. The unique key on listing_views makes the
// operation idempotent; a duplicate insert is not an error.
func (r *ListingRepository) IncrementViewOnce(ctx context.Context, id int64, viewerKey string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		rebind(r.Driver, `INSERT INTO listing_views (listing_id, viewer_key, viewed_at) VALUES (?, ?, ?)`),
		id, viewerKey, time.Now().UTC())
	if err != nil {
		if isDuplicateKey(err) {
			return nil
		}
		return err
	}

	if _, err = tx.ExecContext(ctx,
		rebind(r.Driver, `UPDATE listings SET views = views + 1 WHERE id = ?`), id); err != nil {
		return err
	}
	return tx.Commit()
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func scanListing(row *sql.Row) (models.Listing, error) {
	var l models.Listing
	var county, contactName, contactEmail, contactInfo, telegram sql.NullString
	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Category, &l.City, &county,
		&contactName, &contactEmail, &contactInfo, &telegram,
		&l.Views, &l.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}
	l.County = county.String
	l.ContactName = contactName.String
	l.ContactEmail = contactEmail.String
	l.ContactInfo = contactInfo.String
	l.TelegramUsername = telegram.String
	return l, nil
}

func collectListings(rows *sql.Rows) ([]models.Listing, error) {
	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		var county, contactName, contactEmail, contactInfo, telegram sql.NullString
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Category, &l.City, &county,
			&contactName, &contactEmail, &contactInfo, &telegram,
			&l.Views, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		l.County = county.String
		l.ContactName = contactName.String
		l.ContactEmail = contactEmail.String
		l.ContactInfo = contactInfo.String
		l.TelegramUsername = telegram.String
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
