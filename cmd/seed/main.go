package main

import (
	"github.com/crave-wave/cravewave/internal/config"
	"github.com/crave-wave/cravewave/internal/constants"
	"github.com/crave-wave/cravewave/internal/logger"
	"github.com/crave-wave/cravewave/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	chefs := []models.Chef{
		{ChefName: "Ravi Kumar", BrandName: "Ravi's Kitchen", ChefImageURL: "https://example.com/chef_ravi.jpg", City: "Bengaluru"},
		{ChefName: "Meena Bai", BrandName: "Meena's Home Food", ChefImageURL: "https://example.com/chef_meena.jpg", City: "Bengaluru"},
		{ChefName: "Anil Kumar", BrandName: "Anil's Kitchen", ChefImageURL: "https://example.com/chef_anil.jpg", City: "Chennai"},
		{ChefName: "Sunita Reddy", BrandName: "Sunita's Tiffin", ChefImageURL: "https://example.com/chef_sunita.jpg", City: "Hyderabad"},
	}
	chefIDs := map[string]uint{}
	for _, chef := range chefs {
		var existing models.Chef
		if err := models.DB.Where("chef_name = ?", chef.ChefName).First(&existing).Error; err == nil {
			stdLog.Printf("Chef already exists: %s", chef.ChefName)
			chefIDs[chef.ChefName] = existing.ID
			continue
		}
		record := chef
		if err := models.DB.Create(&record).Error; err != nil {
			stdLog.Printf("Failed to create chef %s: %v", chef.ChefName, err)
			continue
		}
		stdLog.Printf("Created chef: %s", chef.ChefName)
		chefIDs[chef.ChefName] = record.ID
	}

	homeMadeFoods := []struct {
		chefName string
		food     models.HomeMadeFood
	}{
		{
			chefName: "Ravi Kumar",
			food: models.HomeMadeFood{
				FoodName:        "Masala Dosa",
				FoodImageURL:    "https://example.com/masala_dosa.jpg",
				Description:     "Crispy South Indian dosa with spicy potato filling",
				Category:        constants.FoodCategoryMeals,
				Calories:        300,
				Protein:         7,
				Price:           models.NewMoneyFromInt(150),
				PrebookingHours: 2,
				Available:       true,
			},
		},
		{
			chefName: "Meena Bai",
			food: models.HomeMadeFood{
				FoodName:     "Idli Sambar",
				FoodImageURL: "https://example.com/idli_sambar.jpg",
				Description:  "Soft idlis with spicy sambar",
				Category:     constants.FoodCategoryMeals,
				Calories:     180,
				Protein:      6,
				Price:        models.NewMoneyFromInt(100),
				Available:    true,
			},
		},
		{
			chefName: "Anil Kumar",
			food: models.HomeMadeFood{
				FoodName:        "Vada",
				FoodImageURL:    "https://example.com/vada.jpg",
				Description:     "Crispy medu vada with coconut chutney",
				Category:        constants.FoodCategorySnacks,
				Calories:        200,
				Protein:         5,
				Price:           models.NewMoneyFromInt(80),
				PrebookingHours: 2,
				Available:       true,
			},
		},
		{
			chefName: "Sunita Reddy",
			food: models.HomeMadeFood{
				FoodName:     "Pongal",
				FoodImageURL: "https://example.com/pongal.jpg",
				Description:  "Soft and creamy pongal with ghee and spices",
				Category:     constants.FoodCategoryMeals,
				Calories:     250,
				Protein:      6,
				Price:        models.NewMoneyFromInt(120),
				Available:    true,
			},
		},
	}
	for _, entry := range homeMadeFoods {
		chefID, ok := chefIDs[entry.chefName]
		if !ok {
			stdLog.Printf("Skipping dish %s: chef %s missing", entry.food.FoodName, entry.chefName)
			continue
		}
		var existing models.HomeMadeFood
		if err := models.DB.Where("food_name = ?", entry.food.FoodName).First(&existing).Error; err == nil {
			stdLog.Printf("Dish already exists: %s", entry.food.FoodName)
			continue
		}
		record := entry.food
		record.ChefID = chefID
		if err := models.DB.Create(&record).Error; err != nil {
			stdLog.Printf("Failed to create dish %s: %v", entry.food.FoodName, err)
			continue
		}
		stdLog.Printf("Created dish: %s", entry.food.FoodName)
	}

	restaurants := []models.Restaurant{
		{HotelName: "Saravana Bhavan", City: "Chennai"},
		{HotelName: "Spice Garden", City: "Bengaluru"},
	}
	restaurantIDs := map[string]uint{}
	for _, restaurant := range restaurants {
		var existing models.Restaurant
		if err := models.DB.Where("hotel_name = ?", restaurant.HotelName).First(&existing).Error; err == nil {
			stdLog.Printf("Restaurant already exists: %s", restaurant.HotelName)
			restaurantIDs[restaurant.HotelName] = existing.ID
			continue
		}
		record := restaurant
		if err := models.DB.Create(&record).Error; err != nil {
			stdLog.Printf("Failed to create restaurant %s: %v", restaurant.HotelName, err)
			continue
		}
		stdLog.Printf("Created restaurant: %s", restaurant.HotelName)
		restaurantIDs[restaurant.HotelName] = record.ID
	}

	restaurantFoods := []struct {
		hotelName string
		food      models.RestaurantFood
	}{
		{
			hotelName: "Saravana Bhavan",
			food: models.RestaurantFood{
				FoodName:     "Ghee Roast",
				FoodImageURL: "https://example.com/ghee_roast.jpg",
				Description:  "Golden ghee roast dosa served with three chutneys",
				Category:     constants.FoodCategoryMeals,
				Calories:     350,
				Protein:      8,
				Price:        models.NewMoneyFromInt(180),
				Available:    true,
			},
		},
		{
			hotelName: "Spice Garden",
			food: models.RestaurantFood{
				FoodName:     "Gulab Jamun",
				FoodImageURL: "https://example.com/gulab_jamun.jpg",
				Description:  "Warm gulab jamun soaked in cardamom syrup",
				Category:     constants.FoodCategoryDesserts,
				Calories:     320,
				Protein:      4,
				Price:        models.NewMoneyFromInt(90),
				Available:    true,
			},
		},
	}
	for _, entry := range restaurantFoods {
		restaurantID, ok := restaurantIDs[entry.hotelName]
		if !ok {
			stdLog.Printf("Skipping dish %s: restaurant %s missing", entry.food.FoodName, entry.hotelName)
			continue
		}
		var existing models.RestaurantFood
		if err := models.DB.Where("food_name = ?", entry.food.FoodName).First(&existing).Error; err == nil {
			stdLog.Printf("Dish already exists: %s", entry.food.FoodName)
			continue
		}
		record := entry.food
		record.RestaurantID = restaurantID
		if err := models.DB.Create(&record).Error; err != nil {
			stdLog.Printf("Failed to create dish %s: %v", entry.food.FoodName, err)
			continue
		}
		stdLog.Printf("Created dish: %s", entry.food.FoodName)
	}

	stdLog.Printf("Seed finished")
}
