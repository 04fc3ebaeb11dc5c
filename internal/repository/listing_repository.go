package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bruinrent/internal/domain"
)

// ListingRepository encapsulates listing persistence. Reads join the owner's
// public identity; list queries return newest first.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ListingWithOwner, error)
	ListAll(ctx context.Context) ([]domain.ListingWithOwner, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.ListingWithOwner, error)
}

type listingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository instantiates repository.
func NewListingRepository(pool *pgxpool.Pool) ListingRepository {
	return &listingRepository{pool: pool}
}

const listingColumns = `
        l.id, l.owner_id, l.title, l.price, l.address, l.bedrooms,
        l.distance_from_ucla, l.lease_duration, l.description, l.images,
        l.availability, l.created_at, l.updated_at,
        u.id, u.name, u.email`

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	const query = `
        INSERT INTO listings (id, owner_id, title, price, address, bedrooms,
            distance_from_ucla, lease_duration, description, images, availability)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		listing.ID,
		listing.OwnerID,
		listing.Title,
		listing.Price,
		listing.Address,
		listing.Bedrooms,
		listing.DistanceFromUCLA,
		listing.LeaseDuration,
		listing.Description,
		listing.Images,
		listing.Availability,
	).Scan(&listing.CreatedAt, &listing.UpdatedAt)
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	const query = `
        UPDATE listings SET title=$1, price=$2, address=$3, bedrooms=$4,
            distance_from_ucla=$5, lease_duration=$6, description=$7,
            images=$8, availability=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		listing.Title,
		listing.Price,
		listing.Address,
		listing.Bedrooms,
		listing.DistanceFromUCLA,
		listing.LeaseDuration,
		listing.Description,
		listing.Images,
		listing.Availability,
		listing.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.ListingWithOwner, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings l JOIN users u ON u.id = l.owner_id
        WHERE l.id=$1`

	var item domain.ListingWithOwner
	if err := scanListing(r.pool.QueryRow(ctx, query, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *listingRepository) ListAll(ctx context.Context) ([]domain.ListingWithOwner, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings l JOIN users u ON u.id = l.owner_id
        ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *listingRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.ListingWithOwner, error) {
	query := `
        SELECT ` + listingColumns + `
        FROM listings l JOIN users u ON u.id = l.owner_id
        WHERE l.owner_id=$1
        ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func scanListing(row pgx.Row, item *domain.ListingWithOwner) error {
	return row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Title,
		&item.Price,
		&item.Address,
		&item.Bedrooms,
		&item.DistanceFromUCLA,
		&item.LeaseDuration,
		&item.Description,
		&item.Images,
		&item.Availability,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.Owner.ID,
		&item.Owner.Name,
		&item.Owner.Email,
	)
}

func scanListings(rows pgx.Rows) ([]domain.ListingWithOwner, error) {
	var result []domain.ListingWithOwner
	for rows.Next() {
		var item domain.ListingWithOwner
		if err := scanListing(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
