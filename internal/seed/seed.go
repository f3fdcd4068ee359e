// Package seed наполняет пустую базу демонстрационными данными.
// Повторный запуск ничего не дублирует: существующие записи пропускаются.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Leganyst/homeservice-platform/internal/auth"
	"github.com/Leganyst/homeservice-platform/internal/marketplace"
	"github.com/Leganyst/homeservice-platform/internal/model"
	"github.com/Leganyst/homeservice-platform/internal/repository"
)

const (
	CustomerPassword = "customer123"
	ProviderPassword = "provider123"
)

var areas = []model.ServiceArea{
	{City: "Beirut", District: "Achrafieh", PostalCode: "1100"},
	{City: "Beirut", District: "Hamra", PostalCode: "1103"},
	{City: "Beirut", District: "Verdun", PostalCode: "1102"},
	{City: "Mount Lebanon", District: "Jounieh", PostalCode: "1200"},
	{City: "Mount Lebanon", District: "Jbeil", PostalCode: "1201"},
	{City: "Mount Lebanon", District: "Baabda", PostalCode: "1202"},
	{City: "North Lebanon", District: "Tripoli", PostalCode: "1300"},
	{City: "North Lebanon", District: "Zgharta", PostalCode: "1301"},
	{City: "South Lebanon", District: "Sidon", PostalCode: "1400"},
	{City: "South Lebanon", District: "Tyre", PostalCode: "1401"},
	{City: "Bekaa", District: "Zahle", PostalCode: "1500"},
	{City: "Bekaa", District: "Baalbek", PostalCode: "1501"},
}

var categories = []model.ServiceCategory{
	{Name: "Electrician", Description: "Electrical repairs and installations"},
	{Name: "Plumber", Description: "Plumbing repairs and installations"},
	{Name: "Mechanic", Description: "Car and vehicle repairs"},
	{Name: "Cleaning", Description: "Home and office cleaning services"},
	{Name: "AC Repair", Description: "Air conditioning repair and maintenance"},
	{Name: "Carpenter", Description: "Carpentry and furniture work"},
	{Name: "Painter", Description: "Interior and exterior painting"},
}

// area и category — индексы в списках выше.
type demoCustomer struct {
	first, last, email, phone, address string
	area                               int
}

type demoProvider struct {
	first, last, email, phone, address string
	area, category                     int
	rate                               float64
}

var customers = []demoCustomer{
	{"Ali", "Hassan", "ali@customer.com", "+961 70 123456", "Mar Elias Street, Beirut", 0},
	{"Sara", "Khalil", "sara@customer.com", "+961 76 654321", "Hamra Main Street, Beirut", 1},
}

var providers = []demoProvider{
	{"Hassan", "Electrician", "hassan@provider.com", "+961 70 111222", "Downtown Beirut", 0, 0, 35},
	{"Rami", "Plumber", "rami@provider.com", "+961 70 999888", "Jounieh Center", 3, 1, 30},
	{"Nabil", "Mechanic", "nabil@provider.com", "+961 71 555444", "Tripoli Industrial Zone", 6, 2, 40},
	{"Layla", "Cleaning", "layla@provider.com", "+961 76 333222", "Verdun Street, Beirut", 2, 3, 25},
}

// Result хранит, сколько записей создано этим запуском.
type Result struct {
	Areas      int
	Categories int
	Customers  int
	Providers  int
}

// Run создаёт недостающие районы, категории, демо-заказчиков и демо-исполнителей
// в одной транзакции.
func Run(ctx context.Context, store *repository.Store, log logrus.FieldLogger) (Result, error) {
	var res Result
	now := time.Now().UTC()

	custHash, err := auth.HashPassword(CustomerPassword)
	if err != nil {
		return res, err
	}
	provHash, err := auth.HashPassword(ProviderPassword)
	if err != nil {
		return res, err
	}

	err = store.Transaction(ctx, func(tx *repository.Store) error {
		areaIDs, created, err := ensureAreas(ctx, tx)
		if err != nil {
			return err
		}
		res.Areas = created

		categoryIDs, created, err := ensureCategories(ctx, tx)
		if err != nil {
			return err
		}
		res.Categories = created

		for _, d := range customers {
			_, err := tx.Customers.GetByEmail(ctx, d.email)
			exists, err := present(err)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			areaID := areaIDs[d.area]
			c := model.Customer{
				FirstName: d.first, LastName: d.last, Email: d.email, Phone: d.phone, Address: d.address,
				AreaID: &areaID, RegistrationDate: now, PasswordHash: custHash,
			}
			if err := tx.Customers.Create(ctx, &c); err != nil {
				return fmt.Errorf("seed customer %s: %w", d.email, err)
			}
			res.Customers++
			log.WithFields(logrus.Fields{"email": d.email, "role": "customer"}).Info("demo account created")
		}

		for _, d := range providers {
			_, err := tx.Providers.GetByEmail(ctx, d.email)
			exists, err := present(err)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			areaID := areaIDs[d.area]
			p := model.Provider{
				FirstName: d.first, LastName: d.last, Email: d.email, Phone: d.phone, Address: d.address,
				AreaID: &areaID, HourlyRate: d.rate, AvailabilityStatus: model.AvailabilityAvailable,
				DateJoined: now, PasswordHash: provHash,
			}
			if err := tx.Providers.Create(ctx, &p, []int64{categoryIDs[d.category]}); err != nil {
				return fmt.Errorf("seed provider %s: %w", d.email, err)
			}
			res.Providers++
			log.WithFields(logrus.Fields{"email": d.email, "role": "provider"}).Info("demo account created")
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.WithFields(logrus.Fields{
		"areas":      res.Areas,
		"categories": res.Categories,
		"customers":  res.Customers,
		"providers":  res.Providers,
	}).Info("demo data seeded")
	return res, nil
}

// present переводит ошибку поиска в признак наличия записи; NotFound означает false.
func present(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if marketplace.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

func ensureAreas(ctx context.Context, tx *repository.Store) ([]int64, int, error) {
	existing, err := tx.Areas.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	byKey := make(map[string]int64, len(existing))
	for _, a := range existing {
		byKey[a.City+"|"+a.District] = a.ID
	}

	ids := make([]int64, len(areas))
	created := 0
	for i, a := range areas {
		if id, ok := byKey[a.City+"|"+a.District]; ok {
			ids[i] = id
			continue
		}
		row := a
		if err := tx.Areas.Create(ctx, &row); err != nil {
			return nil, 0, fmt.Errorf("seed area %s/%s: %w", a.City, a.District, err)
		}
		ids[i] = row.ID
		created++
	}
	return ids, created, nil
}

func ensureCategories(ctx context.Context, tx *repository.Store) ([]int64, int, error) {
	existing, err := tx.Categories.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	byName := make(map[string]int64, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	ids := make([]int64, len(categories))
	created := 0
	for i, c := range categories {
		if id, ok := byName[c.Name]; ok {
			ids[i] = id
			continue
		}
		row := c
		if err := tx.Categories.Create(ctx, &row); err != nil {
			return nil, 0, fmt.Errorf("seed category %s: %w", c.Name, err)
		}
		ids[i] = row.ID
		created++
	}
	return ids, created, nil
}
