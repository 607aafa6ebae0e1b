package services

import (
	"errors"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
	"gorm.io/gorm"
)

type CartService struct {
	cartRepo    *repository.CartRepository
	productRepo *repository.ProductRepository
}

func NewCartService(cartRepo *repository.CartRepository, productRepo *repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.cartRepo.FindOrCreateByUser(userID)
}

// AddItem puts a product in the cart, merging quantity if already present.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, ErrOutOfStock
	}

	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItem(cart.ID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &entity.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
	default:
		return nil, err
	}
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return s.cartRepo.FindOrCreateByUser(userID)
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	item, err := s.cartRepo.FindItemByID(cart.ID, itemID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(item); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := s.cartRepo.SaveItem(item); err != nil {
			return nil, err
		}
	}
	return s.cartRepo.FindOrCreateByUser(userID)
}

func (s *CartService) RemoveItem(userID, itemID uint) (*entity.Cart, error) {
	return s.UpdateItem(userID, itemID, 0)
}
