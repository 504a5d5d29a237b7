package methodrepo

import (
	"context"
	"errors"
	"strconv"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMethodRepository implements MethodRepository using GORM.
type GormMethodRepository struct {
	db *gorm.DB
}

// NewGormMethodRepository creates a new GORM method repository.
func NewGormMethodRepository(db *gorm.DB) *GormMethodRepository {
	return &GormMethodRepository{db: db}
}

// ListActive retrieves all active methods of active carriers in id order.
// Methods of disabled carriers are filtered out after reconstruction.
func (r *GormMethodRepository) ListActive(ctx context.Context) ([]*shipment.Method, error) {
	var rows []methodRow
	err := r.db.WithContext(ctx).
		Model(&MethodDTO{}).
		Select("shipment_methods.*, shipment_carriers.name AS carrier_name, shipment_carriers.is_active AS carrier_is_active").
		Joins("JOIN shipment_carriers ON shipment_carriers.id = shipment_methods.carrier_id").
		Where("shipment_methods.is_active").
		Order("shipment_methods.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	methods := make([]*shipment.Method, 0, len(rows))
	for _, row := range rows {
		carrier, convErr := row.carrier()
		if convErr != nil {
			return nil, convErr
		}
		if !carrier.IsActive() {
			continue
		}

		m, convErr := toDomain(row, carrier)
		if convErr != nil {
			return nil, convErr
		}
		methods = append(methods, m)
	}

	return methods, nil
}

// FindByID retrieves a method definition with its carrier name.
func (r *GormMethodRepository) FindByID(ctx context.Context, id int64) (*shipment.Method, error) {
	var row methodRow
	err := r.db.WithContext(ctx).
		Model(&MethodDTO{}).
		Select("shipment_methods.*, shipment_carriers.name AS carrier_name, shipment_carriers.is_active AS carrier_is_active").
		Joins("JOIN shipment_carriers ON shipment_carriers.id = shipment_methods.carrier_id").
		First(&row, "shipment_methods.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment method", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	carrier, err := row.carrier()
	if err != nil {
		return nil, err
	}

	return toDomain(row, carrier)
}

// FindDefaultPrice retrieves the stored default price row of a method for a
// store and currency. Returns nil without error when no row exists.
func (r *GormMethodRepository) FindDefaultPrice(
	ctx context.Context,
	methodID, storeID, currencyID int64,
) (*shipment.MethodPrice, error) {
	var dto MethodPriceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "method_id = ? AND store_id = ? AND currency_id = ?", methodID, storeID, currencyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &shipment.MethodPrice{
		GrossPrice: dto.GrossPrice,
		NetPrice:   dto.NetPrice,
	}, nil
}

// GormCurrencyReader implements CurrencyReader using GORM.
type GormCurrencyReader struct {
	db *gorm.DB
}

// NewGormCurrencyReader creates a new GORM currency reader.
func NewGormCurrencyReader(db *gorm.DB) *GormCurrencyReader {
	return &GormCurrencyReader{db: db}
}

// IDByCode resolves an ISO currency code to its storage id.
func (r *GormCurrencyReader) IDByCode(ctx context.Context, code string) (int64, error) {
	var dto CurrencyDTO
	err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("currency", code)
		}
		return 0, err
	}

	return dto.ID, nil
}
