package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/uav-siberia/leads-api/internal/config"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.CustomerRequest{},
		&entity.Message{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the product catalog and the optional admin
// manager account.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	if err := seedCatalog(db); err != nil {
		return err
	}

	// Create admin manager account if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				firstName := adminName
				lastName := ""
				for i, c := range adminName {
					if c == ' ' {
						firstName = adminName[:i]
						lastName = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: firstName,
					LastName:  lastName,
					Email:     adminEmail,
					Password:  string(hashedPassword),
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

// seedCatalog inserts the product catalog. Entries are matched by name,
// so reruns are safe and price changes in code propagate on restart.
func seedCatalog(db *gorm.DB) error {
	products := []entity.Product{
		{Name: "miniSIGMA", Category: enum.CategoryUAV, Description: "Беспилотный комплекс вертикального взлета и посадки для мониторинга и аэрофотосъемки", Price: 2450000},
		{Name: "SIGMA", Category: enum.CategoryUAV, Description: "Беспилотный комплекс самолетного типа увеличенной дальности", Price: 5800000},
		{Name: "Квадрокоптер К-10", Category: enum.CategoryUAV, Description: "Компактный мультикоптер для визуального наблюдения и видеосъемки", Price: 780000},
		{Name: "Автопилот АП-05", Category: enum.CategoryAvionics, Description: "Малогабаритный автопилот с функцией автоматического маршрута и автовозврата", Price: 320000},
		{Name: "Автопилот АП-10", Category: enum.CategoryAvionics, Description: "Автопилот с резервированием датчиков и самодиагностикой", Price: 540000},
		{Name: "Магнитный компас МК-3", Category: enum.CategoryAvionics, Description: "Трехосевой магнитный компас для систем навигации БПЛА", Price: 45000},
		{Name: "Радиомодем РМ-433", Category: enum.CategoryComms, Description: "Дуплексный радиомодем канала телеметрии и управления, 860-1020 МГц", Price: 95000},
		{Name: "Видеолинк ВЛ-2400", Category: enum.CategoryComms, Description: "Широкополосный канал передачи видео реального времени, 2.4 ГГц", Price: 130000},
		{Name: "Антенный пост АП-Т", Category: enum.CategoryComms, Description: "Следящий антенный пост наземной станции управления", Price: 410000},
		{Name: "Камера Ц-20", Category: enum.CategoryPayload, Description: "Стабилизированная видеокамера с 20-кратным цифровым зумом", Price: 260000},
		{Name: "Тепловизор Т-640", Category: enum.CategoryPayload, Description: "Тепловизионный модуль разрешением 640x480 высокой чувствительности", Price: 680000},
		{Name: "Фотоаппарат Ф-42", Category: enum.CategoryPayload, Description: "Фотоаппарат высокого разрешения для аэрофотосъемки и картографии", Price: 350000},
		{Name: "Электродвигатель ЭД-90", Category: enum.CategoryPropulsion, Description: "Бесколлекторный электродвигатель для БПЛА взлетной массой до 25 кг", Price: 38000},
		{Name: "Сервопривод СП-15", Category: enum.CategoryPropulsion, Description: "Цифровой сервопривод рулевых поверхностей", Price: 12000},
		{Name: "ПО Фотоплан", Category: enum.CategorySoftware, Description: "Программный комплекс обработки материалов аэрофотосъемки и построения ортофотопланов", Price: 190000},
		{Name: "Система анализа посевов АГРО-1", Category: enum.CategorySoftware, Description: "Система анализа состояния сельскохозяйственных угодий по данным мультиспектральной съемки", Price: 420000},
	}

	for i := range products {
		var existing entity.Product
		err := db.Where("name = ?", products[i].Name).First(&existing).Error
		if err != nil {
			if err := db.Create(&products[i]).Error; err != nil {
				log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
			}
			continue
		}
		existing.Category = products[i].Category
		existing.Description = products[i].Description
		existing.Price = products[i].Price
		if err := db.Save(&existing).Error; err != nil {
			log.Printf("Warning: failed to update product %s: %v", products[i].Name, err)
		}
	}

	return nil
}
