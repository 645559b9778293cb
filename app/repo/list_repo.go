package repo

import (
	"context"

	"listkeeper/app/models"

	"gorm.io/gorm"
)

type ListRepository struct{ db *gorm.DB }

func NewListRepository(db *gorm.DB) *ListRepository { return &ListRepository{db: db} }

// ForUser returns every item owned by userID in the given SQL order.
func (r *ListRepository) ForUser(ctx context.Context, userID uint, order string) ([]models.ListItem, error) {
	var items []models.ListItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order).
		Find(&items).Error
	return items, err
}

// FindByName looks up the single row for (userID, item).
// Returns gorm.ErrRecordNotFound when the user has no such item.
func (r *ListRepository) FindByName(ctx context.Context, userID uint, item string) (*models.ListItem, error) {
	var it models.ListItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item = ?", userID, item).
		First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ListRepository) Create(ctx context.Context, it *models.ListItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

// SetQuantity updates the quantity of a row the caller owns. A foreign or
// unknown id matches zero rows and is not an error.
func (r *ListRepository) SetQuantity(ctx context.Context, userID uint, itemID int, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.ListItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity).Error
}

// TogglePurchased flips the purchased flag on a row the caller owns.
func (r *ListRepository) TogglePurchased(ctx context.Context, userID uint, itemID int) error {
	return r.db.WithContext(ctx).
		Model(&models.ListItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		UpdateColumn("purchased", gorm.Expr("NOT purchased")).Error
}

// Delete removes a row the caller owns; deleting a foreign or unknown id is
// a silent no-op.
func (r *ListRepository) Delete(ctx context.Context, userID uint, itemID int) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.ListItem{}).Error
}

// DeleteAll removes every row owned by userID.
func (r *ListRepository) DeleteAll(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ListItem{}).Error
}
