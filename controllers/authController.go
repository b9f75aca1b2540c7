package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/decorhaven/decorhaven-api/initializers"
	"github.com/decorhaven/decorhaven-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	msgInvalidInput       = "invalid input"
	msgUserAlreadyExists  = "user already exists"
	msgInvalidCredentials = "invalid email or password"
	msgInternalError      = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

type signupData struct {
	Fullname string `json:"fullname"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func Signup(ctx *gin.Context) {
	var data signupData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.User
	result := initializers.DB.Where("email = ? OR username = ?", data.Email, data.Username).Find(&existing)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
		return
	}

	hashed, err := hashPassword(data.Password)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	// The configured admin address signs up as admin; everyone else is a
	// customer and stays one.
	role := "customer"
	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" && adminEmail == data.Email {
		role = "admin"
	}

	user := models.User{
		Fullname: data.Fullname,
		Username: data.Username,
		Email:    data.Email,
		Password: hashed,
		Role:     role,
	}
	if err := initializers.DB.Create(&user).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "User created successfully."})
}

func Login(ctx *gin.Context) {
	var data models.LoginData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	err := initializers.DB.Where("email = ?", data.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	if err := comparePasswords(user.Password, data.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := generateJWT(user)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}
