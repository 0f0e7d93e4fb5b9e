package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/osokin-dev/gymcart/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

// newServer поднимает фейковый сервис заказов/абонементов на gin.
func (s *ClientTestSuite) newServer(register func(r *gin.Engine)) HTTPClient {
	r := gin.New()
	register(r)
	s.server = httptest.NewServer(r)
	return New(s.server.URL, "test-token")
}

// TestUpdateOrderStatus: успешный авторитетный переход возвращает полную
// каноничную сущность, заголовок авторизации уходит на сервер.
func (s *ClientTestSuite) TestUpdateOrderStatus() {
	var gotAuth string
	client := s.newServer(func(r *gin.Engine) {
		r.PATCH("/api/orders/:id/status", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")

			var req UpdateOrderStatusRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"_id":         c.Param("id"),
				"status":      req.Status,
				"totalAmount": "300",
				"discount":    "0",
				"finalAmount": "300",
				"updatedAt":   "2025-02-01T10:01:00Z",
			})
		})
	})

	order, err := client.UpdateOrderStatus(s.T().Context(), "o1", domain.OrderStatusConfirmed)
	s.Require().NoError(err)

	s.Equal("Bearer test-token", gotAuth)
	s.Equal("o1", order.ID)
	s.Equal(domain.OrderStatusConfirmed, order.Status)
	s.Equal(time.Date(2025, 2, 1, 10, 1, 0, 0, time.UTC), order.UpdatedAt)
	s.True(order.TotalAmount.Equal(decimal.NewFromInt(300)))
}

// TestUpdateOrderStatus_StatusCodes: не-2xx ответы типизируются в StatusCodeError.
func (s *ClientTestSuite) TestUpdateOrderStatus_StatusCodes() {
	type tcase struct {
		name       string
		httpStatus int
	}

	cases := []tcase{
		{name: "conflict", httpStatus: http.StatusConflict},
		{name: "not found", httpStatus: http.StatusNotFound},
		{name: "internal error", httpStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			client := s.newServer(func(r *gin.Engine) {
				r.PATCH("/api/orders/:id/status", func(c *gin.Context) {
					c.Status(tc.httpStatus)
				})
			})

			_, err := client.UpdateOrderStatus(s.T().Context(), "o1", domain.OrderStatusConfirmed)

			var statusErr *StatusCodeError
			s.Require().ErrorAs(err, &statusErr)
			s.Equal(tc.httpStatus, statusErr.Code)

			s.server.Close()
			s.server = nil
		})
	}
}

// TestUpdateOrderStatus_TooManyRequests: 429 с Retry-After типизируется
// отдельно, значение заголовка поднимается в ошибку.
func (s *ClientTestSuite) TestUpdateOrderStatus_TooManyRequests() {
	client := s.newServer(func(r *gin.Engine) {
		r.PATCH("/api/orders/:id/status", func(c *gin.Context) {
			c.Header("Retry-After", "5")
			c.Status(http.StatusTooManyRequests)
		})
	})

	_, err := client.UpdateOrderStatus(s.T().Context(), "o1", domain.OrderStatusConfirmed)

	var tooMany *TooManyRequestError
	s.Require().ErrorAs(err, &tooMany)
	s.Equal(5*time.Second, tooMany.RetryAfter)
}

func (s *ClientTestSuite) TestParseRetryAfter() {
	s.Equal(5*time.Second, parseRetryAfter("5"))
	// мусор и значения вне границ приводятся к 60 секундам.
	s.Equal(60*time.Second, parseRetryAfter("garbage"))
	s.Equal(60*time.Second, parseRetryAfter("0"))
	s.Equal(60*time.Second, parseRetryAfter("500"))
}

// TestCancelMembership.
func (s *ClientTestSuite) TestCancelMembership() {
	client := s.newServer(func(r *gin.Engine) {
		r.POST("/api/memberships/:id/cancel", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"_id":    c.Param("id"),
				"user":   "u1",
				"status": "cancelled",
			})
		})
	})

	m, err := client.CancelMembership(s.T().Context(), "m1")
	s.Require().NoError(err)
	s.Equal("m1", m.ID)
	s.Equal(domain.MembershipStatusCancelled, m.Status)
	s.Equal("u1", m.User.ID())
}

// TestAssignMembership: тело запроса уходит как есть, ответ содержит
// заполненные ссылки плана и зала.
func (s *ClientTestSuite) TestAssignMembership() {
	var gotReq AssignMembershipRequest
	client := s.newServer(func(r *gin.Engine) {
		r.POST("/api/memberships", func(c *gin.Context) {
			if err := c.ShouldBindJSON(&gotReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, gin.H{
				"_id":    "m9",
				"user":   gotReq.UserID,
				"plan":   gin.H{"_id": gotReq.PlanID, "name": "Gold", "price": "4990", "durationDays": 90},
				"status": "active",
			})
		})
	})

	args := AssignMembershipRequest{
		UserID:    "u1",
		PlanID:    "p1",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	m, err := client.AssignMembership(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(args, gotReq)
	s.Equal("m9", m.ID)

	plan, ok := m.Plan.Value()
	s.Require().True(ok)
	s.Equal("Gold", plan.Name)
}

// TestListMyMemberships: разбирается постраничный конверт и прокидываются
// query параметры.
func (s *ClientTestSuite) TestListMyMemberships() {
	var gotQuery map[string][]string
	client := s.newServer(func(r *gin.Engine) {
		r.GET("/api/memberships/mine", func(c *gin.Context) {
			gotQuery = c.Request.URL.Query()
			c.JSON(http.StatusOK, gin.H{
				"data": []gin.H{
					{"_id": "m1", "status": "active"},
					{"_id": "m2", "status": "expired"},
				},
				"pagination": gin.H{"page": 2, "limit": 2, "total": 5, "pages": 3},
			})
		})
	})

	page, err := client.ListMyMemberships(s.T().Context(), ListArgs{Page: 2, Limit: 2})
	s.Require().NoError(err)

	s.Equal([]string{"2"}, gotQuery["page"])
	s.Equal([]string{"2"}, gotQuery["limit"])

	s.Require().Len(page.Data, 2)
	s.Equal("m1", page.Data[0].ID)
	s.Equal(Pagination{Page: 2, Limit: 2, Total: 5, Pages: 3}, page.Pagination)
}

// TestListMemberships_Filters.
func (s *ClientTestSuite) TestListMemberships_Filters() {
	var gotQuery map[string][]string
	client := s.newServer(func(r *gin.Engine) {
		r.GET("/api/memberships", func(c *gin.Context) {
			gotQuery = c.Request.URL.Query()
			c.JSON(http.StatusOK, gin.H{
				"data":       []gin.H{},
				"pagination": gin.H{"page": 1, "limit": 100, "total": 0, "pages": 0},
			})
		})
	})

	_, err := client.ListMemberships(s.T().Context(), ListArgs{GymID: "g1", Status: "active"})
	s.Require().NoError(err)

	s.Equal([]string{"g1"}, gotQuery["gym"])
	s.Equal([]string{"active"}, gotQuery["status"])
}
