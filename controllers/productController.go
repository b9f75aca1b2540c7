package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/decorhaven/decorhaven-api/models"
	"github.com/decorhaven/decorhaven-api/storage"
	"github.com/gin-gonic/gin"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// ProductController serves the catalog endpoints against whichever
// persistence adapter the deployment selected.
type ProductController struct {
	Store storage.ProductStore
}

func NewProductController(store storage.ProductStore) *ProductController {
	return &ProductController{Store: store}
}

func (pc *ProductController) GetProducts(ctx *gin.Context) {
	term := ctx.Query("term")
	products, err := pc.Store.List(term)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProduct(ctx *gin.Context) {
	product, err := pc.Store.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}
	// The detail page shows the color picker, so a product without its own
	// palette is served with the default one.
	product.Colors = product.ColorsOrDefault()
	ctx.JSON(http.StatusOK, product)
}

func (pc *ProductController) GetFeaturedProducts(ctx *gin.Context) {
	products, err := pc.Store.Featured()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch featured products", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProductsByCategory(ctx *gin.Context) {
	products, err := pc.Store.ByCategory(ctx.Param("category"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products for category", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := pc.Store.Create(input.Product())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := pc.Store.Update(ctx.Param("id"), input.Product())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	if err := pc.Store.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages uploads admin-panel images to S3 and appends their
// URLs to one of the product's image sequences, selected by ?field=
// (description, specification or delivery; description by default).
func (pc *ProductController) UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	product, err := pc.Store.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	field := ctx.DefaultQuery("field", "description")
	if field != "description" && field != "specification" && field != "delivery" {
		respondWithError(ctx, http.StatusBadRequest, "Unknown image field", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "decorhaven"
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key to prevent overwrites
		uniqueFilename := fmt.Sprintf("%s-%s-%s", product.ID, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	if len(uploadedUrls) > 0 {
		switch field {
		case "specification":
			product.SpecificationImages = append(product.SpecificationImages, uploadedUrls...)
		case "delivery":
			product.DeliveryImages = append(product.DeliveryImages, uploadedUrls...)
		default:
			product.DescriptionImages = append(product.DescriptionImages, uploadedUrls...)
		}
		if _, err := pc.Store.Update(product.ID, product); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to save image URLs", err)
			return
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}
