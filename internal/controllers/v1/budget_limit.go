package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterBudgetLimitRoutes registers the routes for budget limits with
// the RouterGroup that is passed.
func RegisterBudgetLimitRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetLimitList)
		r.GET("", GetBudgetLimits)
		r.POST("", CreateBudgetLimits)
	}

	// Budget limit with ID
	{
		r.OPTIONS("/:id", OptionsBudgetLimitDetail)
		r.GET("/:id", GetBudgetLimit)
		r.DELETE("/:id", DeleteBudgetLimit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Limits
// @Success		204
// @Router			/v1/budget-limits [options]
func OptionsBudgetLimitList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Limits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-limits/{id} [options]
func OptionsBudgetLimitDetail(c *gin.Context) {
	resourceOptionsDetail[models.BudgetLimit](c, httputil.OptionsGetDelete)
}

// @Summary		Create budget limits
// @Description	Creates new budget limits. There can be multiple limits for the same category.
// @Tags			Budget Limits
// @Produce		json
// @Success		201				{object}	BudgetLimitCreateResponse
// @Failure		400				{object}	BudgetLimitCreateResponse
// @Failure		500				{object}	BudgetLimitCreateResponse
// @Param			budgetLimits	body		[]BudgetLimitEditable	true	"Budget Limits"
// @Router			/v1/budget-limits [post]
func CreateBudgetLimits(c *gin.Context) {
	var editables []BudgetLimitEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLimitCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetLimitCreateResponse{}
	now := evaluator(c).Now()

	for _, editable := range editables {
		limit := editable.model(auth.UserID(c))

		err = models.DB.Create(&limit).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		expenses, err := categoryExpenses(c, limit.Category)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetLimit(c, limit, expenses, now)
		r.Data = append(r.Data, BudgetLimitResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budget limits
// @Description	Returns a list of budget limits with the spending in their current window
// @Tags			Budget Limits
// @Produce		json
// @Success		200			{object}	BudgetLimitListResponse
// @Failure		400			{object}	BudgetLimitListResponse
// @Failure		500			{object}	BudgetLimitListResponse
// @Router			/v1/budget-limits [get]
// @Param			category	query	string	false	"Filter by exact category"
// @Param			period		query	string	false	"Filter by period"	Enums(daily, weekly, monthly)
// @Param			offset		query	uint	false	"The offset of the first Budget Limit returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Budget Limits to return. Defaults to 50."
func GetBudgetLimits(c *gin.Context) {
	var filter BudgetLimitQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetLimitListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := owned(c).Order("category ASC, created_at ASC")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.Period != "" {
		q = q.Where("period = ?", filter.Period.String())
	}

	limit := limit(setFields, filter.Limit)

	var limits []models.BudgetLimit
	count, err := paginate(q, &models.BudgetLimit{}, &limits, filter.Offset, limit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLimitListResponse{
			Error: &e,
		})
		return
	}

	categories := make([]string, 0, len(limits))
	for _, l := range limits {
		categories = append(categories, l.Category)
	}

	expenses, err := categoryExpenses(c, categories...)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLimitListResponse{
			Error: &e,
		})
		return
	}

	now := evaluator(c).Now()
	data := make([]BudgetLimit, 0, len(limits))
	for _, l := range limits {
		data = append(data, newBudgetLimit(c, l, expenses, now))
	}

	c.JSON(http.StatusOK, BudgetLimitListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget limit
// @Description	Returns a specific budget limit with the spending in its current window
// @Tags			Budget Limits
// @Produce		json
// @Success		200	{object}	BudgetLimitResponse
// @Failure		400	{object}	BudgetLimitResponse
// @Failure		404	{object}	BudgetLimitResponse
// @Failure		500	{object}	BudgetLimitResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-limits/{id} [get]
func GetBudgetLimit(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLimitResponse{
			Error: &s,
		})
		return
	}

	limit, err := ownedResource[models.BudgetLimit](c, uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLimitResponse{
			Error: &s,
		})
		return
	}

	expenses, err := categoryExpenses(c, limit.Category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLimitResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetLimit(c, limit, expenses, evaluator(c).Now())
	c.JSON(http.StatusOK, BudgetLimitResponse{Data: &data})
}

// @Summary		Delete budget limit
// @Description	Deletes a budget limit
// @Tags			Budget Limits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-limits/{id} [delete]
func DeleteBudgetLimit(c *gin.Context) {
	resourceDelete[models.BudgetLimit](c)
}
