package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.News{},
		&model.Section{},
		&model.NewsLike{},
	)
}

// SeedSections inserts the course sections. There is no UI for them; this
// and direct SQL are the only ways rows get in.
func SeedSections(db *gorm.DB) error {
	defaultSections := []model.Section{
		{Name: "Математика", Teacher: "И. П. Корзун", Description: "Алгебра и геометрия, подготовка к олимпиадам"},
		{Name: "Физика", Teacher: "А. В. Лагутин", Description: "Лабораторные работы и физический кружок"},
		{Name: "Информатика", Teacher: "Т. С. Жукова", Description: "Программирование и робототехника"},
		{Name: "Спорт", Teacher: "Д. Н. Орлов", Description: "Секции по волейболу и лёгкой атлетике"},
	}

	for _, section := range defaultSections {
		var count int64
		if err := db.Model(&model.Section{}).
			Where("name = ?", section.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&section).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("login = ?", "admin").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := "admin"
	adminUser := model.User{
		Login:        "admin",
		Email:        "+375 29 000 00 00",
		PasswordHash: string(hashedPasswordBytes),
		Role:         &role,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Println("   Login: admin")
	log.Println("   Password: admin123")

	return nil
}
