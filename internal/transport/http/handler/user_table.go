package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"go-gin-user-table/internal/domain"
	"go-gin-user-table/internal/feature/table"
	httpez "go-gin-user-table/internal/transport/http/ez"
)

var (
	tableViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "user_table_views_total", Help: "Rendered user table views"},
		[]string{"sort", "empty"},
	)
	tableMatched = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "user_table_matched_rows",
		Help:    "Rows left after search filtering",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func init() { prometheus.MustRegister(tableViews, tableMatched) }

type UserTableHandler struct {
	src      domain.UserSource
	pageSize int
	log      *zap.Logger
}

func NewUserTableHandler(src domain.UserSource, pageSize int, l *zap.Logger) *UserTableHandler {
	if pageSize <= 0 {
		pageSize = table.DefaultPageSize
	}
	return &UserTableHandler{src: src, pageSize: pageSize, log: l}
}

type tableQ struct {
	Q    string `form:"q"`
	Sort string `form:"sort"`
	Dir  string `form:"dir"`
	Page int    `form:"page,default=1"`
}

// Mount registers:
//
//	POST /users/list   every record, unfiltered
//	GET  /users/table  one page of the searched and sorted list
func (h *UserTableHandler) Mount(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.User]{
		Method: http.MethodPost,
		Path:   "/users/list",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.User, error) {
			users, err := h.src.ListUsers(c.Request.Context())
			if err != nil {
				return nil, httpez.Internal("list users failed", err)
			}
			if users == nil {
				users = []domain.User{}
			}
			return users, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[tableQ, table.View]{
		Method:  http.MethodGet,
		Path:    "/users/table",
		Binder:  httpez.BindQuery,
		Handler: h.view,
	})
}

func (h *UserTableHandler) view(c *gin.Context, in *tableQ) (table.View, error) {
	field, err := table.ParseField(in.Sort)
	if err != nil {
		return table.View{}, httpez.BadRequest("unknown sort field: " + in.Sort)
	}
	dir, err := table.ParseDirection(in.Dir)
	if err != nil {
		return table.View{}, httpez.BadRequest("unknown sort direction: " + in.Dir)
	}

	users := table.Snapshot(c.Request.Context(), h.src, h.log)
	v := table.Compute(users, table.Query{
		SearchTerm: in.Q,
		Sort:       table.SortConfig{Field: field, Direction: dir},
		Page:       in.Page,
		PageSize:   h.pageSize,
	})

	tableMatched.Observe(float64(v.TotalCount))
	tableViews.WithLabelValues(field.String(), strconv.FormatBool(len(v.Rows) == 0)).Inc()
	return v, nil
}
