package config

import (
	"fmt"
	"log"

	"baa-logistica/internal/adapters/persistence/models"
	"baa-logistica/internal/core/domain"
	"baa-logistica/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser creates the initial admin when no user exists yet.
// Credentials come from SEED_ADMIN_LOGIN / SEED_ADMIN_PASSWORD; without
// them nothing is seeded — there is no built-in default account.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if s.cfg.Seed.AdminLogin == "" || s.cfg.Seed.AdminPassword == "" {
		return fmt.Errorf("no users exist and SEED_ADMIN_LOGIN/SEED_ADMIN_PASSWORD are not set")
	}

	hashedPassword, err := password.Hash(s.cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Usuario{
		Nome:      "Administrador",
		Email:     s.cfg.Seed.AdminLogin + "@local",
		Login:     s.cfg.Seed.AdminLogin,
		SenhaHash: hashedPassword,
		Perfil:    domain.PerfilAdmin,
		Ativo:     true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user seeded: %s", admin.Login)
	return nil
}
