package repository

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db}
}

type ProductFilter struct {
	CategoryID uint
	Search     string
	Page       int
	PageSize   int
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, int64, error) {
	q := r.db.Model(&entity.Product{})
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	var products []entity.Product
	err := q.Preload("Category").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Preload("Category").First(&p, id).Error
	return &p, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Product{}, id).Error
}

func (r *ProductRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.db.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *ProductRepository) CreateCategory(c *entity.Category) error {
	return r.db.Create(c).Error
}
