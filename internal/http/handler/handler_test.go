package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jediarchives/internal/model"
	"jediarchives/internal/service"
	serviceMocks "jediarchives/internal/service/mocks"
	storeMocks "jediarchives/internal/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	newHopeID = "ZmlsbXM6MQ=="
	lukeID    = "cGVvcGxlOjE="
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mStore := new(storeMocks.MockStorage)

	app := fiber.New()
	app.Get("/health", HealthCheck(db, mStore))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		mStore.On("Ping", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("bucket unreachable", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		mStore.On("Ping", mock.Anything).Return(errors.New("no bucket")).Once()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("no dependencies", func(t *testing.T) {
		bare := fiber.New()
		bare.Get("/health", HealthCheck(nil, nil))

		resp, _ := bare.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
	mStore.AssertExpectations(t)
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFilms(t *testing.T) {
	mockSvc := new(serviceMocks.MockScreenService)
	app := fiber.New()
	app.Get("/films", Films(mockSvc))

	t.Run("success", func(t *testing.T) {
		screen := &model.Screen{
			Route: model.FilmsRoute(),
			Title: "Films",
			Sections: []model.Section{
				model.ReferenceSection("Films", []model.RefItem{
					model.NewRefItem(newHopeID, "A New Hope", "1977-05-25", model.FilmRoute(newHopeID)),
				}),
			},
		}
		mockSvc.On("Films", mock.Anything).Return(screen, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/films", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Screen
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, *screen, result)
		assert.Equal(t, "/films/ZmlsbXM6MQ==", result.References()[0].Path)
		mockSvc.AssertExpectations(t)
	})

	t.Run("upstream error", func(t *testing.T) {
		mockSvc.On("Films", mock.Anything).
			Return(nil, fmt.Errorf("%w: films: dial tcp: refused", service.ErrUpstream)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/films", nil))

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "UPSTREAM_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "dial tcp")
		mockSvc.AssertExpectations(t)
	})
}

func TestFilmDetail(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *serviceMocks.MockScreenService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			path: "/films/" + newHopeID,
			setup: func(m *serviceMocks.MockScreenService) {
				m.On("FilmDetail", mock.Anything, newHopeID).
					Return(&model.Screen{Route: model.FilmRoute(newHopeID), Title: "A New Hope"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid id",
			path: "/films/" + lukeID,
			setup: func(m *serviceMocks.MockScreenService) {
				m.On("FilmDetail", mock.Anything, lukeID).Return(nil, service.ErrInvalidID).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "not found",
			path: "/films/ZmlsbXM6OTk=",
			setup: func(m *serviceMocks.MockScreenService) {
				m.On("FilmDetail", mock.Anything, "ZmlsbXM6OTk=").Return(nil, service.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name: "unexpected error",
			path: "/films/" + newHopeID,
			setup: func(m *serviceMocks.MockScreenService) {
				m.On("FilmDetail", mock.Anything, newHopeID).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockScreenService)
			app := fiber.New()
			app.Get("/films/:id", FilmDetail(mockSvc))
			tt.setup(mockSvc)

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestCharacterDetail(t *testing.T) {
	mockSvc := new(serviceMocks.MockScreenService)
	app := fiber.New()
	app.Get("/characters/:id", CharacterDetail(mockSvc))

	t.Run("escaped id", func(t *testing.T) {
		mockSvc.On("CharacterDetail", mock.Anything, lukeID).
			Return(&model.Screen{Route: model.CharacterRoute(lukeID), Title: "Luke Skywalker"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters/cGVvcGxlOjE%3D", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Screen
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Luke Skywalker", result.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("upstream error", func(t *testing.T) {
		mockSvc.On("CharacterDetail", mock.Anything, lukeID).Return(nil, service.ErrUpstream).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/characters/"+lukeID, nil))

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "UPSTREAM_ERROR", decodeError(t, resp).Error.Code)
	})
}

func TestCreateArchive(t *testing.T) {
	mockSvc := new(serviceMocks.MockArchiveService)
	app := fiber.New()
	app.Post("/archives", CreateArchive(mockSvc))

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/archives", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		expected := &model.Archive{ID: uuid.New().String(), Screen: "film", SubjectID: newHopeID, Title: "A New Hope"}
		mockSvc.On("Create", mock.Anything, model.FilmRoute(newHopeID)).Return(expected, nil).Once()

		resp := post(`{"route":"/films/ZmlsbXM6MQ=="}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Archive
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid route", func(t *testing.T) {
		resp := post(`{"route":"/planets/1"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ROUTE", decodeError(t, resp).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := post(`{`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ROUTE", decodeError(t, resp).Error.Code)
	})

	t.Run("subject not found", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, model.CharacterRoute(lukeID)).Return(nil, service.ErrNotFound).Once()

		resp := post(`{"route":"/characters/cGVvcGxlOjE="}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListArchives(t *testing.T) {
	mockSvc := new(serviceMocks.MockArchiveService)
	app := fiber.New()
	app.Get("/archives", ListArchives(mockSvc))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.ArchiveListResult{
			Items: []model.Archive{{ID: uuid.New().String(), Title: "Films"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expectedRes, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/archives?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ArchiveListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives?offset=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, errors.New("service error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetArchive(t *testing.T) {
	mockSvc := new(serviceMocks.MockArchiveService)
	app := fiber.New()
	app.Get("/archives/:id", GetArchive(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		expected := &model.Archive{ID: id, Title: "Films", DownloadURL: "http://minio/signed"}
		mockSvc.On("Get", mock.Anything, id).Return(expected, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Archive
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		assert.Equal(t, "http://minio/signed", result.DownloadURL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives/"+id, nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestArchiveContent(t *testing.T) {
	mockSvc := new(serviceMocks.MockArchiveService)
	app := fiber.New()
	app.Get("/archives/:id/content", ArchiveContent(mockSvc))

	t.Run("streams snapshot", func(t *testing.T) {
		id := uuid.New().String()
		content := `{"title":"Films"}`
		mockSvc.On("Open", mock.Anything, id).
			Return(io.NopCloser(strings.NewReader(content)), &model.Archive{ID: id, Size: int64(len(content)), ContentType: "application/json"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives/"+id+"/content", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, string(b))
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Open", mock.Anything, id).Return(nil, nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/archives/"+id+"/content", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteArchive(t *testing.T) {
	mockSvc := new(serviceMocks.MockArchiveService)
	app := fiber.New()
	app.Delete("/archives/:id", DeleteArchive(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/archives/"+id, nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/archives/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/archives/"+id, nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "routing_test_total", Help: "test"}))

	newApp := func(archives service.ArchiveService) *fiber.App {
		app := fiber.New(fiber.Config{
			ErrorHandler: ErrorHandler(),
		})
		RegisterRoutes(app, Deps{
			Screens:  new(serviceMocks.MockScreenService),
			Archives: archives,
			Gatherer: reg,
		})
		return app
	}

	t.Run("not found route", func(t *testing.T) {
		resp, _ := newApp(nil).Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := newApp(nil).Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("archives disabled", func(t *testing.T) {
		resp, _ := newApp(nil).Test(httptest.NewRequest(http.MethodGet, "/archives", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("archives enabled", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockArchiveService)
		mockSvc.On("List", mock.Anything, 10, 0).Return(&service.ArchiveListResult{Items: []model.Archive{}}, nil).Once()

		resp, _ := newApp(mockSvc).Test(httptest.NewRequest(http.MethodGet, "/archives", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, _ := newApp(nil).Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(b), "routing_test_total")
	})
}
