package user

import (
	"time"

	"github.com/google/uuid"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 密码以bcrypt哈希存储，实体上没有任何读取明文的方法
// 2. ID在创建时生成（UUID），不依赖数据库自增
// 3. 领域实体不依赖GORM tag（infrastructure层负责映射）
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(firstName, lastName, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DisplayName 展示名：名 + 空格 + 姓
// 任一部分为空时也保持这个拼接规则
func DisplayName(firstName, lastName string) string {
	return firstName + " " + lastName
}

// FullName 用户展示名
func (u *User) FullName() string {
	return DisplayName(u.FirstName, u.LastName)
}

// Rename 修改姓名（领域行为）
func (u *User) Rename(firstName, lastName string) {
	u.FirstName = firstName
	u.LastName = lastName
	u.UpdatedAt = time.Now()
}
