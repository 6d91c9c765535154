package auth

import (
	"github.com/chamador/gestor-inventario/internal/application/dto"
	"github.com/chamador/gestor-inventario/internal/domain"
	"github.com/chamador/gestor-inventario/internal/domain/entity"
	"github.com/chamador/gestor-inventario/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config configuración del caso de uso de auth: el usuario administrador
// único (credenciales de configuración) y los parámetros del JWT.
type Config struct {
	AdminUser         string
	AdminPasswordHash string // hash bcrypt
	JWTSecret         string
	JWTExpMinutes     int
	JWTIssuer         string
}

// AuthUseCase caso de uso de autenticación: login del administrador.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// HashPassword hashea una contraseña con bcrypt (costo por defecto).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifica usuario/contraseña contra las credenciales configuradas y
// genera un JWT con rol Administrador. Devuelve ErrUnauthorized si las
// credenciales no coinciden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.User != uc.cfg.AdminUser || uc.cfg.AdminPasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, in.User, entity.RoleAdministrador, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  in.User,
		Role:  entity.RoleAdministrador,
	}, nil
}
