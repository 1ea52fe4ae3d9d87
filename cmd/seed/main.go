package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gleamhub/carwash-booking/internal/config"
	dbpkg "github.com/gleamhub/carwash-booking/internal/db"
	"github.com/gleamhub/carwash-booking/internal/domain/pricing"
	"github.com/gleamhub/carwash-booking/internal/images"
	"github.com/gleamhub/carwash-booking/internal/models"
)

// fixtureVersion gates re-runs: the seeder is idempotent and only applies
// when the stored version is older. Bump it when the fixture set changes.
const fixtureVersion = "2"

const versionKey = "fixture_version"

type modelFixture struct {
	Name    string
	Type    string
	Segment string
}

type brandFixture struct {
	Name   string
	Models []modelFixture
}

var segments = []models.Segment{
	{Name: "Compact Hatchback", Description: "Small city hatchbacks"},
	{Name: "Premium Hatchback", Description: "Larger feature-rich hatchbacks"},
	{Name: "Compact Sedan", Description: "Sub-4m sedans"},
	{Name: "Mid-size Sedan", Description: "Full-size family sedans"},
	{Name: "Compact SUV", Description: "Crossovers and compact SUVs"},
	{Name: "Mid-size SUV", Description: "Three-row and larger SUVs"},
	{Name: "Luxury", Description: "Premium and luxury vehicles"},
}

var brands = []brandFixture{
	{
		Name: "Maruti Suzuki",
		Models: []modelFixture{
			{Name: "Alto", Type: models.CarTypeHatchback, Segment: "Compact Hatchback"},
			{Name: "Baleno", Type: models.CarTypeHatchback, Segment: "Premium Hatchback"},
			{Name: "Dzire", Type: models.CarTypeSedan, Segment: "Compact Sedan"},
			{Name: "Brezza", Type: models.CarTypeSUV, Segment: "Compact SUV"},
		},
	},
	{
		Name: "Hyundai",
		Models: []modelFixture{
			{Name: "i20", Type: models.CarTypeHatchback, Segment: "Premium Hatchback"},
			{Name: "Verna", Type: models.CarTypeSedan, Segment: "Mid-size Sedan"},
			{Name: "Creta", Type: models.CarTypeSUV, Segment: "Compact SUV"},
		},
	},
	{
		Name: "Tata",
		Models: []modelFixture{
			{Name: "Tiago", Type: models.CarTypeHatchback, Segment: "Compact Hatchback"},
			{Name: "Nexon", Type: models.CarTypeSUV, Segment: "Compact SUV"},
			{Name: "Safari", Type: models.CarTypeSUV, Segment: "Mid-size SUV"},
		},
	},
	{
		Name: "Mercedes-Benz",
		Models: []modelFixture{
			{Name: "C-Class", Type: models.CarTypeLuxury, Segment: "Luxury"},
			{Name: "GLC", Type: models.CarTypeLuxury, Segment: "Luxury"},
		},
	},
}

var services = []models.Service{
	{
		Title:       "Basic Wash",
		Description: "Exterior foam wash, wheel cleaning and towel dry.",
		BasePrice:   499,
		PricingRules: models.PricingRules{
			"Compact Sedan":  599,
			"Mid-size Sedan": 649,
			"Compact SUV":    699,
			"Mid-size SUV":   799,
			"Luxury":         999,
		},
		Features: models.StringList{"Foam wash", "Wheel cleaning", "Towel dry"},
	},
	{
		Title:       "Interior Detailing",
		Description: "Vacuum, dashboard polish, upholstery shampoo.",
		BasePrice:   1499,
		PricingRules: models.PricingRules{
			"Compact SUV":  1799,
			"Mid-size SUV": 1999,
			"Luxury":       2499,
		},
		Features: models.StringList{"Deep vacuum", "Upholstery shampoo", "Dashboard polish", "Odour treatment"},
	},
	{
		Title:       "Full Detailing",
		Description: "Complete interior and exterior detailing with wax finish.",
		BasePrice:   2999,
		Features:    models.StringList{"Clay bar treatment", "Machine polish", "Carnauba wax", "Interior detailing"},
	},
}

var locations = []models.Location{
	{City: "Surat", Areas: models.StringList{"Adajan", "Vesu", "Katargam"}, IsActive: true},
	{City: "Ahmedabad", Areas: models.StringList{"Satellite", "Bopal", "Maninagar"}, IsActive: true},
	{City: "Vadodara", Areas: models.StringList{"Alkapuri", "Gotri"}, IsActive: false},
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var stored models.Setting
	err := db.Where("key = ?", versionKey).First(&stored).Error
	if err == nil && stored.Value >= fixtureVersion {
		log.Printf("fixtures already at version %s, nothing to do", stored.Value)
		return
	}

	if err := apply(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	row := models.Setting{Key: versionKey, Value: fixtureVersion}
	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		log.Fatalf("failed to record fixture version: %v", err)
	}

	maybeFetchImages(cfg)

	log.Printf("fixtures applied at version %s", fixtureVersion)
}

func apply(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {

		for _, seg := range segments {
			s := seg
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
				return fmt.Errorf("segment %s: %w", seg.Name, err)
			}
		}

		for _, bf := range brands {
			brand := models.Brand{Name: bf.Name, Logo: images.Sanitize(bf.Name)}
			if err := tx.
				Where(models.Brand{Name: bf.Name}).
				FirstOrCreate(&brand).Error; err != nil {
				return fmt.Errorf("brand %s: %w", bf.Name, err)
			}

			for _, mf := range bf.Models {
				cm := models.CarModel{
					Name:    mf.Name,
					BrandID: brand.ID,
					Type:    mf.Type,
					Segment: mf.Segment,
					Image:   images.Sanitize(mf.Name),
				}
				if err := tx.
					Where(models.CarModel{Name: mf.Name, BrandID: brand.ID}).
					FirstOrCreate(&cm).Error; err != nil {
					return fmt.Errorf("model %s: %w", mf.Name, err)
				}
			}
		}

		for _, svc := range services {
			s := svc
			s.Image = images.Sanitize(s.Title)
			if err := tx.
				Where(models.Service{Title: svc.Title}).
				FirstOrCreate(&s).Error; err != nil {
				return fmt.Errorf("service %s: %w", svc.Title, err)
			}
		}

		for _, loc := range locations {
			l := loc
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&l).Error; err != nil {
				return fmt.Errorf("location %s: %w", loc.City, err)
			}
		}

		for key, value := range pricing.DefaultSurcharges {
			row := models.Setting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("setting %s: %w", key, err)
			}
		}

		return nil
	})
}

// maybeFetchImages downloads seeded images listed in SEED_IMAGE_BASE_URL
// into the static directories. Remote fetches get an explicit timeout; a
// miss only logs, the catalog works without pictures.
func maybeFetchImages(cfg *config.Config) {
	base := os.Getenv("SEED_IMAGE_BASE_URL")
	if base == "" {
		return
	}

	client := &http.Client{Timeout: 15 * time.Second}

	fetch := func(dir, name string) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("image dir %s: %v", dir, err)
			return
		}

		url := fmt.Sprintf("%s/%s.jpg", base, name)
		resp, err := client.Get(url)
		if err != nil {
			log.Printf("fetch %s: %v", url, err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("fetch %s: status %d", url, resp.StatusCode)
			return
		}

		dst, err := os.Create(filepath.Join(dir, name+".jpg"))
		if err != nil {
			log.Printf("write %s: %v", name, err)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, resp.Body); err != nil {
			log.Printf("write %s: %v", name, err)
		}
	}

	for _, bf := range brands {
		fetch(cfg.BrandsImageDir, images.Sanitize(bf.Name))
		for _, mf := range bf.Models {
			fetch(cfg.ModelsImageDir, images.Sanitize(mf.Name))
		}
	}
}
