package services

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"djurdata-ai/config"
	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/models"
	"djurdata-ai/internal/repositories"
	"djurdata-ai/internal/utils"
)

type AuthService interface {
	Signup(req *dtos.SignupRequest) (*dtos.AuthResponse, uint, error)
	Login(req *dtos.LoginRequest) (*dtos.AuthResponse, uint, error)
	RefreshToken(refreshToken string) (*dtos.RefreshTokenResponse, uint, error)
	Logout(refreshToken string, accessToken string) (uint, error)
	GetUser(userID string) (*models.User, uint, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	jwtService utils.JWTService
	tokenRepo  repositories.TokenRepository
}

func NewAuthService(userRepo repositories.UserRepository, jwtService utils.JWTService, tokenRepo repositories.TokenRepository) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
	}
}

func (s *authService) Signup(req *dtos.SignupRequest) (*dtos.AuthResponse, uint, error) {
	if req.Username == config.Env.AdminUser {
		return nil, http.StatusBadRequest, errors.New("username already exists")
	}

	existingUser, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if existingUser != nil {
		return nil, http.StatusBadRequest, errors.New("username already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	user := models.NewUser(req.Username, hashedPassword)
	if err := s.userRepo.Create(user); err != nil {
		return nil, http.StatusBadRequest, err
	}

	return s.issueTokens(user, http.StatusCreated)
}

func (s *authService) Login(req *dtos.LoginRequest) (*dtos.AuthResponse, uint, error) {
	var authUser *models.User
	var err error

	// The configured admin account is checked against env credentials and
	// created on first login.
	if req.Username == config.Env.AdminUser {
		log.Println("Admin User Login")
		if req.Password != config.Env.AdminPassword {
			return nil, http.StatusUnauthorized, errors.New("invalid password")
		}
		authUser, err = s.userRepo.FindByUsername(req.Username)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if authUser == nil {
			log.Println("Admin User not found, creating user")
			hashedPassword, err := utils.HashPassword(req.Password)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			authUser = models.NewUser(req.Username, hashedPassword)
			authUser.IsAdmin = true
			if err = s.userRepo.Create(authUser); err != nil {
				log.Println("Failed to create admin user:" + err.Error())
				return nil, http.StatusBadRequest, err
			}
		}
	} else {
		authUser, err = s.userRepo.FindByUsername(req.Username)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		if authUser == nil {
			return nil, http.StatusUnauthorized, errors.New("invalid credentials")
		}
		if !utils.CheckPasswordHash(req.Password, authUser.Password) {
			return nil, http.StatusUnauthorized, errors.New("invalid credentials")
		}
	}

	return s.issueTokens(authUser, http.StatusOK)
}

func (s *authService) issueTokens(user *models.User, statusCode uint) (*dtos.AuthResponse, uint, error) {
	accessToken, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if err := s.tokenRepo.StoreRefreshToken(user.ID, *refreshToken); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return &dtos.AuthResponse{
		AccessToken:  *accessToken,
		RefreshToken: *refreshToken,
		User:         *user,
	}, statusCode, nil
}

func (s *authService) RefreshToken(refreshToken string) (*dtos.RefreshTokenResponse, uint, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, http.StatusUnauthorized, fmt.Errorf("invalid refresh token")
	}

	// Check if the refresh token exists in Redis
	if !s.tokenRepo.ValidateRefreshToken(*claims, refreshToken) {
		return nil, http.StatusUnauthorized, fmt.Errorf("refresh token not found")
	}

	accessToken, err := s.jwtService.GenerateToken(*claims)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return &dtos.RefreshTokenResponse{
		AccessToken: *accessToken,
	}, http.StatusOK, nil
}

func (s *authService) Logout(refreshToken string, accessToken string) (uint, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return http.StatusUnauthorized, fmt.Errorf("invalid refresh token")
	}

	if err := s.tokenRepo.DeleteRefreshToken(*claims, refreshToken); err != nil {
		return http.StatusInternalServerError, err
	}

	// Blacklist the access token until its original expiration
	if _, err = s.jwtService.ValidateToken(accessToken); err != nil {
		return http.StatusUnauthorized, fmt.Errorf("invalid access token")
	}

	if err := s.tokenRepo.BlacklistToken(accessToken, time.Duration(config.Env.JWTExpirationMilliseconds)*time.Millisecond); err != nil {
		return http.StatusInternalServerError, err
	}

	return http.StatusOK, nil
}

func (s *authService) GetUser(userID string) (*models.User, uint, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if user == nil {
		return nil, http.StatusNotFound, errors.New("user not found")
	}

	return user, http.StatusOK, nil
}
