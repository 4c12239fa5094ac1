package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

const sparePartColumns = `
	internal_article_number, supplier_article_number, name, type, department, room_section, machine_number,
	length, height, width, weight, manufacturer, supplier, supplier_org_id, price,
	location, building, storage_rack, shelf_level, quantity, date, storage_priority,
	added_by, orderer_name, image_url, comment, created_at, updated_at`

// SparePartRepo implementación de SparePartRepository sobre PostgreSQL (usable con pool o tx).
type SparePartRepo struct {
	q Querier
}

// NewSparePartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSparePartRepository(q Querier) *SparePartRepo {
	return &SparePartRepo{q: q}
}

func scanSparePart(row pgx.Row) (*entity.SparePart, error) {
	var p entity.SparePart
	err := row.Scan(
		&p.InternalArticleNumber, &p.SupplierArticleNumber, &p.Name, &p.Type, &p.Department, &p.RoomSection, &p.MachineNumber,
		&p.Dimensions.Length, &p.Dimensions.Height, &p.Dimensions.Width, &p.Weight, &p.Manufacturer, &p.Supplier, &p.SupplierOrgID, &p.Price,
		&p.Location, &p.Building, &p.StorageRack, &p.ShelfLevel, &p.Quantity, &p.Date, &p.StoragePriority,
		&p.AddedBy, &p.OrdererName, &p.ImageURL, &p.Comment, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SparePartRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.SparePart, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	out := make([]*entity.SparePart, 0)
	for rows.Next() {
		p, err := scanSparePart(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

// List todos los repuestos por número de artículo.
func (r *SparePartRepo) List(ctx context.Context) ([]*entity.SparePart, error) {
	return r.list(ctx, "list spare parts",
		`SELECT`+sparePartColumns+` FROM spare_parts ORDER BY internal_article_number`)
}

// ListByArticleNumbers repuestos cuyo número está en la lista (los desconocidos se ignoran).
func (r *SparePartRepo) ListByArticleNumbers(ctx context.Context, articleNumbers []string) ([]*entity.SparePart, error) {
	if len(articleNumbers) == 0 {
		return []*entity.SparePart{}, nil
	}
	return r.list(ctx, "list spare parts by article numbers",
		`SELECT`+sparePartColumns+` FROM spare_parts WHERE internal_article_number = ANY($1) ORDER BY internal_article_number`,
		articleNumbers)
}

// GetByArticleNumber devuelve nil, nil si no existe.
func (r *SparePartRepo) GetByArticleNumber(ctx context.Context, articleNumber string) (*entity.SparePart, error) {
	p, err := scanSparePart(r.q.QueryRow(ctx,
		`SELECT`+sparePartColumns+` FROM spare_parts WHERE internal_article_number = $1`, articleNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get spare part", err)
	}
	return p, nil
}

// GetForUpdate toma un advisory lock transaccional sobre el número de artículo (serializa también
// las altas concurrentes de una fila que aún no existe) y luego bloquea la fila con SELECT FOR UPDATE.
// Solo tiene efecto dentro de una transacción.
func (r *SparePartRepo) GetForUpdate(ctx context.Context, articleNumber string) (*entity.SparePart, error) {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, articleNumber); err != nil {
		return nil, wrapErr("lock spare part", err)
	}
	p, err := scanSparePart(r.q.QueryRow(ctx,
		`SELECT`+sparePartColumns+` FROM spare_parts WHERE internal_article_number = $1 FOR UPDATE`, articleNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get spare part for update", err)
	}
	return p, nil
}

// Upsert inserta (con quantity 0) o sobrescribe todos los atributos salvo quantity y created_at.
func (r *SparePartRepo) Upsert(ctx context.Context, p *entity.SparePart) error {
	query := `
		INSERT INTO spare_parts (
			internal_article_number, supplier_article_number, name, type, department, room_section, machine_number,
			length, height, width, weight, manufacturer, supplier, supplier_org_id, price,
			location, building, storage_rack, shelf_level, quantity, date, storage_priority,
			added_by, orderer_name, image_url, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, 0, $20, $21, $22, $23, $24, $25, now(), now())
		ON CONFLICT (internal_article_number) DO UPDATE SET
			supplier_article_number = EXCLUDED.supplier_article_number,
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			department = EXCLUDED.department,
			room_section = EXCLUDED.room_section,
			machine_number = EXCLUDED.machine_number,
			length = EXCLUDED.length,
			height = EXCLUDED.height,
			width = EXCLUDED.width,
			weight = EXCLUDED.weight,
			manufacturer = EXCLUDED.manufacturer,
			supplier = EXCLUDED.supplier,
			supplier_org_id = EXCLUDED.supplier_org_id,
			price = EXCLUDED.price,
			location = EXCLUDED.location,
			building = EXCLUDED.building,
			storage_rack = EXCLUDED.storage_rack,
			shelf_level = EXCLUDED.shelf_level,
			date = EXCLUDED.date,
			storage_priority = EXCLUDED.storage_priority,
			added_by = EXCLUDED.added_by,
			orderer_name = EXCLUDED.orderer_name,
			image_url = EXCLUDED.image_url,
			comment = EXCLUDED.comment,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		p.InternalArticleNumber, p.SupplierArticleNumber, p.Name, p.Type, p.Department, p.RoomSection, p.MachineNumber,
		p.Dimensions.Length, p.Dimensions.Height, p.Dimensions.Width, p.Weight, p.Manufacturer, p.Supplier, p.SupplierOrgID, p.Price,
		p.Location, p.Building, p.StorageRack, p.ShelfLevel, p.Date, p.StoragePriority,
		p.AddedBy, p.OrdererName, p.ImageURL, p.Comment,
	)
	if err != nil {
		return wrapErr("upsert spare part", err)
	}
	return nil
}

// UpdateQuantity único UPDATE de la columna quantity; lo usa el servicio de mutación dentro de su tx.
func (r *SparePartRepo) UpdateQuantity(ctx context.Context, articleNumber string, quantity int) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE spare_parts SET quantity = $2, updated_at = now() WHERE internal_article_number = $1`,
		articleNumber, quantity)
	if err != nil {
		return wrapErr("update quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el repuesto; el historial (sin FK) se conserva.
func (r *SparePartRepo) Delete(ctx context.Context, articleNumber string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM spare_parts WHERE internal_article_number = $1`, articleNumber)
	if err != nil {
		return wrapErr("delete spare part", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
