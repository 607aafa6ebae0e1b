package services

import (
	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
)

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo}
}

func (s *ProductService) List(f repository.ProductFilter) ([]entity.Product, int64, error) {
	return s.repo.List(f)
}

func (s *ProductService) Detail(id uint) (*entity.Product, error) {
	return s.repo.FindByID(id)
}

func (s *ProductService) Create(p *entity.Product) error {
	return s.repo.Create(p)
}

type ProductUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Stock       *int    `json:"stock"`
	ImageURL    *string `json:"imageUrl"`
	CategoryID  *uint   `json:"categoryId"`
}

func (s *ProductService) Update(id uint, in ProductUpdate) (*entity.Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *ProductService) Categories() ([]entity.Category, error) {
	return s.repo.ListCategories()
}

func (s *ProductService) CreateCategory(name string) (*entity.Category, error) {
	cat := &entity.Category{Name: name}
	if err := s.repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}
