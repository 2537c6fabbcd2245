package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterSavingsGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsGoalList)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoals)
	}

	// Savings Goal with ID
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
	}

	// Contributions
	{
		r.OPTIONS("/:id/contributions", OptionsSavingsGoalContributions)
		r.POST("/:id/contributions", CreateSavingsGoalContribution)
	}
}

// RegisterSavingsCategoryRoutes registers the routes for the preset
// savings categories with the RouterGroup that is passed.
func RegisterSavingsCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSavingsCategories)
	r.GET("", GetSavingsCategories)
}

// milestones preloads the milestones of a goal, lowest percentage first.
func milestones(db *gorm.DB) *gorm.DB {
	return db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("percentage ASC")
	})
}

// ownedSavingsGoal loads a savings goal of the authenticated user with its milestones.
func ownedSavingsGoal(c *gin.Context, id URIID) (models.SavingsGoal, error) {
	var goal models.SavingsGoal
	err := milestones(owned(c)).First(&goal, "id = ?", id.ID.UUID).Error
	return goal, err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Success		204
// @Router			/v1/savings-goals [options]
func OptionsSavingsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	resourceOptionsDetail[models.SavingsGoal](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id}/contributions [options]
func OptionsSavingsGoalContributions(c *gin.Context) {
	resourceOptionsDetail[models.SavingsGoal](c, httputil.OptionsPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Success		204
// @Router			/v1/savings-categories [options]
func OptionsSavingsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get savings categories
// @Description	Returns the categories a savings goal can have
// @Tags			Savings Goals
// @Produce		json
// @Success		200	{object}	SavingsCategoryListResponse
// @Router			/v1/savings-categories [get]
func GetSavingsCategories(c *gin.Context) {
	c.JSON(http.StatusOK, SavingsCategoryListResponse{Data: models.SavingsCategories})
}

// @Summary		Create savings goals
// @Description	Creates new savings goals. Milestones at 25 %, 50 % and 75 % of the target amount are created with each goal.
// @Tags			Savings Goals
// @Produce		json
// @Success		201				{object}	SavingsGoalCreateResponse
// @Failure		400				{object}	SavingsGoalCreateResponse
// @Failure		500				{object}	SavingsGoalCreateResponse
// @Param			savingsGoals	body		[]SavingsGoalEditable	true	"Savings Goals"
// @Router			/v1/savings-goals [post]
func CreateSavingsGoals(c *gin.Context) {
	var editables []SavingsGoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SavingsGoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model(auth.UserID(c))

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSavingsGoal(c, goal)
		r.Data = append(r.Data, SavingsGoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get savings goals
// @Description	Returns a list of savings goals, the closest deadline first
// @Tags			Savings Goals
// @Produce		json
// @Success		200			{object}	SavingsGoalListResponse
// @Failure		400			{object}	SavingsGoalListResponse
// @Failure		500			{object}	SavingsGoalListResponse
// @Router			/v1/savings-goals [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by savings category"
// @Param			offset		query	uint	false	"The offset of the first Savings Goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Savings Goals to return. Defaults to 50."
func GetSavingsGoals(c *gin.Context) {
	var filter SavingsGoalQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := owned(c).Order("deadline ASC, created_at ASC")
	q = stringFilter(q, setFields, "Name", "name", filter.Name)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	limit := limit(setFields, filter.Limit)

	var goals []models.SavingsGoal
	count, err := paginate(milestones(q), &models.SavingsGoal{}, &goals, filter.Offset, limit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SavingsGoal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newSavingsGoal(c, goal))
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get savings goal
// @Description	Returns a specific savings goal with its milestones
// @Tags			Savings Goals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Failure		500	{object}	SavingsGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	goal, err := ownedSavingsGoal(c, uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsGoal(c, goal)
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Update savings goal
// @Description	Sets the amount saved for a goal and updates which milestones are reached
// @Tags			Savings Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Failure		500		{object}	SavingsGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			update	body		SavingsGoalUpdate	true	"Saved amount"
// @Router			/v1/savings-goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	goal, err := ownedSavingsGoal(c, uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	var update SavingsGoalUpdate
	fields, err := httputil.GetBodyFields(c, update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	if !slices.Contains(fields, any("CurrentAmount")) || update.CurrentAmount == nil {
		s := errCurrentAmountMissing.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	goal.SetCurrentAmount(*update.CurrentAmount)
	saveSavingsGoal(c, goal, http.StatusOK)
}

// @Summary		Contribute to savings goal
// @Description	Adds an amount to the amount saved for a goal and updates which milestones are reached
// @Tags			Savings Goals
// @Accept			json
// @Produce		json
// @Success		201				{object}	SavingsGoalResponse
// @Failure		400				{object}	SavingsGoalResponse
// @Failure		404				{object}	SavingsGoalResponse
// @Failure		500				{object}	SavingsGoalResponse
// @Param			id				path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contribution	body		Contribution	true	"Contribution"
// @Router			/v1/savings-goals/{id}/contributions [post]
func CreateSavingsGoalContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	goal, err := ownedSavingsGoal(c, uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	var contribution Contribution
	err = httputil.BindData(c, &contribution)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	if contribution.Amount == nil || contribution.Amount.IsZero() {
		s := errContributionZero.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	goal.Contribute(*contribution.Amount)
	saveSavingsGoal(c, goal, http.StatusCreated)
}

// saveSavingsGoal persists the saved amount and milestones of a goal and
// responds with the updated goal.
func saveSavingsGoal(c *gin.Context, goal models.SavingsGoal, successStatus int) {
	err := goal.Save(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	data := newSavingsGoal(c, goal)
	c.JSON(successStatus, SavingsGoalResponse{Data: &data})
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal together with its milestones
// @Tags			Savings Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	resourceDelete[models.SavingsGoal](c)
}
