package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muhwezim78/Nashiecom-sub000/entity"
	"github.com/muhwezim78/Nashiecom-sub000/pkg/resp"
	"github.com/muhwezim78/Nashiecom-sub000/repository"
	"github.com/muhwezim78/Nashiecom-sub000/services"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{s}
}

// GET /products?category=&search=&page=
func (c *ProductController) List(ctx *gin.Context) {
	categoryID, _ := strconv.Atoi(ctx.Query("category"))
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))

	products, total, err := c.service.List(repository.ProductFilter{
		CategoryID: uint(categoryID),
		Search:     ctx.Query("search"),
		Page:       page,
		PageSize:   20,
	})
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"products": products, "total": total, "page": page})
}

// GET /products/:id
func (c *ProductController) Detail(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	product, err := c.service.Detail(uint(id))
	if err != nil {
		resp.NotFound(ctx, "product not found")
		return
	}
	resp.OK(ctx, product)
}

// GET /categories
func (c *ProductController) Categories(ctx *gin.Context) {
	cats, err := c.service.Categories()
	if err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, cats)
}

// POST /admin/products
func (c *ProductController) Create(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int64  `json:"price" binding:"required,gt=0"`
		Stock       int    `json:"stock"`
		ImageURL    string `json:"imageUrl"`
		CategoryID  uint   `json:"categoryId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}

	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
	if err := c.service.Create(product); err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.Created(ctx, product)
}

// PATCH /admin/products/:id
func (c *ProductController) Update(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	var req services.ProductUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}
	product, err := c.service.Update(uint(id), req)
	if err != nil {
		resp.NotFound(ctx, "product not found")
		return
	}
	resp.OK(ctx, product)
}

// DELETE /admin/products/:id
func (c *ProductController) Delete(ctx *gin.Context) {
	id, _ := strconv.Atoi(ctx.Param("id"))
	if err := c.service.Delete(uint(id)); err != nil {
		resp.ServerError(ctx, err)
		return
	}
	resp.OK(ctx, gin.H{"deleted": id})
}

// POST /admin/categories
func (c *ProductController) CreateCategory(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(ctx, "invalid request")
		return
	}
	cat, err := c.service.CreateCategory(req.Name)
	if err != nil {
		resp.Conflict(ctx, "category exists")
		return
	}
	resp.Created(ctx, cat)
}
