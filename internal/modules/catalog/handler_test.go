package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aerotours/internal/database"
	"aerotours/internal/domain"
	"aerotours/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	service := NewService(
		repository.NewDestinationRepository(db),
		repository.NewTourRepository(db),
		repository.NewServiceRepository(db),
		repository.NewImageRepository(db),
		repository.NewContactInfoRepository(db),
	)
	handler := NewHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)

	return router, db
}

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestListDestinationsActiveOnlyOrdered(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&domain.Destination{Slug: "second", NameEs: "B", NameEn: "B", IsActive: true, DisplayOrder: 2}).Error)
	require.NoError(t, db.Create(&domain.Destination{Slug: "first", NameEs: "A", NameEn: "A", IsActive: true, DisplayOrder: 1}).Error)
	require.NoError(t, db.Create(&domain.Destination{Slug: "hidden", NameEs: "X", NameEn: "X", IsActive: false, DisplayOrder: 0}).Error)

	resp := performGet(router, "/api/v1/destinations")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			Destinations []DestinationView `json:"destinations"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data.Destinations, 2)
	require.Equal(t, "first", payload.Data.Destinations[0].Slug)
	require.Equal(t, "second", payload.Data.Destinations[1].Slug)
}

func TestGetDestinationDisplayInfo(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&domain.Destination{
		Slug:      "holbox",
		NameEs:    "Holbox",
		NameEn:    "Holbox",
		PriceFrom: 999,
		AircraftPricing: domain.AircraftPricing{
			{Aircraft: "Cessna 206", MaxPassengers: 5, Price: 650},
			{Aircraft: "Cessna Grand Caravan", MaxPassengers: 12, Price: 1400},
		},
		Gallery:  domain.StringList{"/a.jpg", "/b.jpg"},
		IsActive: true,
	}).Error)

	resp := performGet(router, "/api/v1/destinations/holbox")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			Destination DestinationView `json:"destination"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, 650.0, payload.Data.Destination.Display.MinPrice)
	require.Equal(t, 5, payload.Data.Destination.Display.MinPassengers)
	require.True(t, payload.Data.Destination.Display.ShowGallery)
}

func TestGetDestinationNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performGet(router, "/api/v1/destinations/atlantis")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetTourNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performGet(router, "/api/v1/tours/nowhere")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListServicesResolvesIcons(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&domain.SiteService{Icon: "plane", TitleEs: "Vuelos", TitleEn: "Flights", IsActive: true, DisplayOrder: 1}).Error)
	require.NoError(t, db.Create(&domain.SiteService{Icon: "rocket", TitleEs: "Otro", TitleEn: "Other", IsActive: true, DisplayOrder: 2}).Error)

	resp := performGet(router, "/api/v1/services")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			Services []ServiceCardView `json:"services"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data.Services, 2)
	require.Equal(t, domain.IconPlane, payload.Data.Services[0].ResolvedIcon)
	require.Equal(t, domain.IconDefault, payload.Data.Services[1].ResolvedIcon)
}

func TestListImagesBySection(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&domain.SiteImage{Section: "hero", URL: "/h.jpg", IsActive: true, DisplayOrder: 1}).Error)
	require.NoError(t, db.Create(&domain.SiteImage{Section: "about", URL: "/a.jpg", IsActive: true, DisplayOrder: 1}).Error)

	resp := performGet(router, "/api/v1/images?section=hero")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			Images []domain.SiteImage `json:"images"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Data.Images, 1)
	require.Equal(t, "/h.jpg", payload.Data.Images[0].URL)
}

func TestGetContactInfo(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&domain.ContactInfo{Phone: "+52 998 123 4567", Email: "reservas@aerotours.mx"}).Error)

	resp := performGet(router, "/api/v1/contact-info")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			ContactInfo *domain.ContactInfo `json:"contact_info"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotNil(t, payload.Data.ContactInfo)
	require.Equal(t, "reservas@aerotours.mx", payload.Data.ContactInfo.Email)
}
