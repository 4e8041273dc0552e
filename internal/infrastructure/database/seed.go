package database

import (
	"log"

	"github.com/jamaney/mmtacos-api/internal/domain/entity"
	"github.com/jamaney/mmtacos-api/internal/domain/enum"
	"github.com/jamaney/mmtacos-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// SeedDefaultData seeds the admin account and the register catalog. Both are
// idempotent: existing rows are left untouched so catalog edits survive
// restarts.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}

	log.Println("Default data seeded")
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return nil
	}

	if adminName == "" {
		adminName = "Admin"
	}

	admin := &entity.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: hashedPassword,
		Role:     "admin",
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
	}
	return nil
}

type seedProduct struct {
	name     string
	price    int64
	category enum.ProductCategory
	sizes    []entity.ProductSize
}

func tacosSizes(m, xl, xxl int64) []entity.ProductSize {
	return []entity.ProductSize{
		{Name: "M", Price: m},
		{Name: "XL", Price: xl},
		{Name: "XXL", Price: xxl},
	}
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := []seedProduct{
		{"Tacos Viande", 4000, enum.CategoryTacos, tacosSizes(4000, 6500, 10000)},
		{"Tacos Poulet", 4000, enum.CategoryTacos, tacosSizes(4000, 6500, 10000)},
		{"Tacos Mixte", 4000, enum.CategoryTacos, tacosSizes(4000, 6500, 10000)},
		{"Tacos KFC", 5000, enum.CategoryTacos, tacosSizes(5000, 8000, 12000)},
		{"Tacos Pané Miel", 5500, enum.CategoryTacos, tacosSizes(5500, 8000, 12000)},
		{"Tacos Cordon Bleu", 5000, enum.CategoryTacos, tacosSizes(5000, 6500, 12000)},
		{"Tacos Hotdog", 4000, enum.CategoryTacos, tacosSizes(4000, 6500, 10000)},
		{"Tacos Merguez", 4000, enum.CategoryTacos, tacosSizes(4000, 6500, 10000)},
		{"Tacos Crevettes", 7500, enum.CategoryTacos, tacosSizes(7500, 12500, 18500)},
		{"Tacos Saumon", 6000, enum.CategoryTacos, tacosSizes(6000, 8000, 12000)},
		{"Tacos Corned-Beef", 4000, enum.CategoryTacos, tacosSizes(4000, 6500, 10000)},

		{"MENU Tacos Viande", 5000, enum.CategoryMenu, tacosSizes(5000, 7500, 11000)},
		{"MENU Tacos Poulet", 5000, enum.CategoryMenu, tacosSizes(5000, 7500, 11000)},
		{"MENU Tacos Mixte", 5000, enum.CategoryMenu, tacosSizes(5000, 7500, 11000)},
		{"MENU Tacos KFC", 6000, enum.CategoryMenu, tacosSizes(6000, 9000, 13000)},
		{"MENU Tacos Cordon Bleu", 6000, enum.CategoryMenu, tacosSizes(6000, 9000, 13000)},
		{"MENU Tacos Hotdog", 5000, enum.CategoryMenu, tacosSizes(5000, 7500, 11000)},
		{"MENU Tacos Merguez", 5000, enum.CategoryMenu, tacosSizes(5000, 7500, 11000)},
		{"MENU Tacos Crevettes", 8500, enum.CategoryMenu, tacosSizes(8500, 13500, 19500)},
		{"MENU Tacos Corned-Beef", 5000, enum.CategoryMenu, tacosSizes(5000, 7500, 11000)},

		{"MM'KFC Box", 5000, enum.CategorySpecial, nil},
		{"Pané miel", 1500, enum.CategorySpecial, nil},

		{"Supplément Fromage", 500, enum.CategorySupplement, nil},
		{"Supplément Frites", 500, enum.CategorySupplement, nil},
		{"Supplément Ananas", 500, enum.CategorySupplement, nil},
		{"Supplément Olives", 500, enum.CategorySupplement, nil},
		{"Gratiné", 1000, enum.CategorySupplement, nil},
		{"Supplément Jambon", 500, enum.CategorySupplement, nil},
		{"Supplément Oeufs", 500, enum.CategorySupplement, nil},
		{"Supplément Hotdog", 1000, enum.CategorySupplement, nil},

		{"Boisson", 500, enum.CategoryBoisson, nil},
		{"Menthe au Lait", 1000, enum.CategoryBoisson, nil},
	}

	for _, p := range catalog {
		product := entity.Product{
			Name:     p.name,
			Slug:     utils.Slugify(p.name),
			Price:    p.price,
			Category: p.category,
			Sizes:    p.sizes,
			Active:   true,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", p.name, err)
		}
	}
	return nil
}
