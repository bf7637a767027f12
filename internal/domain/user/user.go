package user

import (
	"time"

	"github.com/google/uuid"
)

// Role описывает роль пользователя в системе.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User представляет доменную модель пользователя.
//
// Важно: эта модель описывает бизнес‑сущность и не зависит от деталей транспорта (HTTP, gRPC)
// и конкретного представления в БД. Ядро тренировок ссылается на пользователя
// только по идентификатору и никогда его не изменяет.
type User struct {
	ID           uuid.UUID // Уникальный идентификатор пользователя
	Username     string    // Никнейм (уникальный логин)
	PasswordHash string    // Хэш пароля
	Role         Role      // Роль (user/admin)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время последнего обновления
}

// NewUser — фабрика для создания нового пользователя на доменном уровне.
// Предполагается, что валидация входных данных и хеширование пароля
// выполняются на уровне usecase‑слоя до вызова этой функции.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
