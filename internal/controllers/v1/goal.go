package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goalvault/backend/internal/httputil"
	"github.com/goalvault/backend/internal/models"
	"github.com/goalvault/backend/internal/progress"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// goalOrder sorts listings by priority first, newest goals first within
// the same priority.
const goalOrder = "CASE goals.priority WHEN 'CRITICAL' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END DESC, goals.created_at DESC"

func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
	{
		r.OPTIONS("/:id/contributions", OptionsGoalContributions)
		r.POST("/:id/contributions", CreateGoalContribution)
	}
	{
		r.OPTIONS("/:id/withdrawals", OptionsGoalWithdrawals)
		r.POST("/:id/withdrawals", CreateGoalWithdrawal)
	}
	{
		r.OPTIONS("/:id/complete", OptionsGoalComplete)
		r.POST("/:id/complete", CompleteGoal)
	}
	{
		r.OPTIONS("/:id/pause", OptionsGoalPause)
		r.POST("/:id/pause", PauseGoal)
	}
	{
		r.OPTIONS("/:id/resume", OptionsGoalResume)
		r.POST("/:id/resume", ResumeGoal)
	}
	{
		r.OPTIONS("/:id/progress", OptionsGoalProgress)
		r.GET("/:id/progress", GetGoalProgress)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	_, err := requestedGoal(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/contributions [options]
func OptionsGoalContributions(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/withdrawals [options]
func OptionsGoalWithdrawals(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/complete [options]
func OptionsGoalComplete(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/pause [options]
func OptionsGoalPause(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/resume [options]
func OptionsGoalResume(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/progress [options]
func OptionsGoalProgress(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create goal
// @Description	Creates a new goal for the requesting user. An initial amount is moved from the wallet atomically with the creation.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		401		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func CreateGoal(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	var editable GoalEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	cmd, err := editable.command()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Create(user.ID, cmd)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &apiResource})
}

// @Summary		Get goals
// @Description	Returns the goals of the requesting user. The summary always aggregates all goals of the user, regardless of filters.
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	GoalListResponse
// @Failure		401	{object}	GoalListResponse
// @Failure		404	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
// @Param			status		query	string	false	"Filter by status"
// @Param			type		query	string	false	"Filter by type"
// @Param			priority	query	string	false	"Filter by priority"
// @Param			offset		query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	var filter GoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order(goalOrder).
		Where("goals.user_id = ?", user.ID)

	if filter.Status != "" {
		goalStatus, ok := models.ParseGoalStatus(filter.Status)
		if !ok {
			e := errStatusFilterInvalid.Error()
			c.JSON(http.StatusBadRequest, GoalListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("goals.status = ?", goalStatus)
	}

	if filter.Type != "" {
		goalType, ok := models.ParseGoalType(filter.Type)
		if !ok {
			e := errTypeFilterInvalid.Error()
			c.JSON(http.StatusBadRequest, GoalListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("goals.type = ?", goalType)
	}

	if filter.Priority != "" {
		priority, ok := models.ParseGoalPriority(filter.Priority)
		if !ok {
			e := errPriorityInvalid.Error()
			c.JSON(http.StatusBadRequest, GoalListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("goals.priority = ?", priority)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 goals and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.Goal
	err = q.Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	summary, err := goalSummary(user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
		Summary: summary,
	})
}

// goalSummary aggregates over all goals of the user, not only the ones
// matching the current listing filters.
func goalSummary(userID uuid.UUID) (*GoalSummary, error) {
	var goals []models.Goal
	err := models.DB.Where("user_id = ?", userID).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	summary := GoalSummary{
		TotalSaved:      decimal.Zero,
		TotalTarget:     decimal.Zero,
		OverallProgress: decimal.Zero,
	}

	for _, goal := range goals {
		summary.TotalSaved = summary.TotalSaved.Add(goal.CurrentAmount)
		summary.TotalTarget = summary.TotalTarget.Add(goal.TargetAmount)

		switch goal.Status {
		case models.GoalStatusActive:
			summary.ActiveGoals++
		case models.GoalStatusCompleted:
			summary.CompletedGoals++
		}
	}

	if summary.TotalTarget.IsPositive() {
		summary.OverallProgress = summary.TotalSaved.
			Div(summary.TotalTarget).
			Mul(decimal.NewFromInt(100))
	}

	return &summary, nil
}

// @Summary		Get goal
// @Description	Returns a specific goal of the requesting user
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	goal, err := requestedGoal(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates an existing goal. Only values to be updated need to be specified. Fund amounts cannot be changed here.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		401		{object}	GoalResponse
// @Failure		403		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalUpdate	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	var update GoalUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	cmd, err := update.command()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Update(user.ID, uri.ID.UUID, cmd)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Cancels a goal. Saved funds are refunded to the wallet, the goal stays visible as cancelled.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = engine.Delete(user.ID, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Contribute to goal
// @Description	Moves funds from the wallet into the goal. Reaching the target completes the goal in the same call.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201				{object}	GoalResponse
// @Failure		400				{object}	GoalResponse
// @Failure		401				{object}	GoalResponse
// @Failure		404				{object}	GoalResponse
// @Failure		500				{object}	GoalResponse
// @Param			id				path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contribution	body		GoalAmount	true	"Contribution"
// @Router			/v1/goals/{id}/contributions [post]
func CreateGoalContribution(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	var data GoalAmount
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Contribute(user.ID, uri.ID.UUID, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &apiResource})
}

// @Summary		Withdraw from goal
// @Description	Moves funds from the goal back into the wallet. A completed goal dropping below its target reopens as active.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201			{object}	GoalResponse
// @Failure		400			{object}	GoalResponse
// @Failure		401			{object}	GoalResponse
// @Failure		404			{object}	GoalResponse
// @Failure		500			{object}	GoalResponse
// @Param			id			path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			withdrawal	body		GoalAmount	true	"Withdrawal"
// @Router			/v1/goals/{id}/withdrawals [post]
func CreateGoalWithdrawal(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	var data GoalAmount
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Withdraw(user.ID, uri.ID.UUID, data.Amount, data.Reason)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &apiResource})
}

// @Summary		Complete goal
// @Description	Manually marks a goal as completed. No funds move.
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/complete [post]
func CompleteGoal(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Complete(user.ID, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Pause goal
// @Description	Puts an active goal on hold
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/pause [post]
func PauseGoal(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Pause(user.ID, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Resume goal
// @Description	Reactivates a goal that is on hold
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/resume [post]
func ResumeGoal(c *gin.Context) {
	user, uri, err := requestContext(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := engine.Resume(user.ID, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Get goal progress
// @Description	Returns the progress report for a goal, including milestones and recommended saving rates
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	ProgressResponse
// @Failure		400	{object}	ProgressResponse
// @Failure		401	{object}	ProgressResponse
// @Failure		404	{object}	ProgressResponse
// @Failure		500	{object}	ProgressResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/progress [get]
func GetGoalProgress(c *gin.Context) {
	goal, err := requestedGoal(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProgressResponse{
			Error: &e,
		})
		return
	}

	report := progress.Calculate(goal, time.Now().In(time.UTC))
	c.JSON(http.StatusOK, ProgressResponse{Data: &report})
}

// requestContext resolves the requesting user and the goal ID from the URI.
func requestContext(c *gin.Context) (models.User, URIID, error) {
	user, err := currentUser(c)
	if err != nil {
		return models.User{}, URIID{}, err
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		return models.User{}, URIID{}, err
	}

	return user, uri, nil
}

// requestedGoal loads the goal from the URI, scoped to the requesting user.
func requestedGoal(c *gin.Context) (models.Goal, error) {
	user, uri, err := requestContext(c)
	if err != nil {
		return models.Goal{}, err
	}

	var goal models.Goal
	err = models.DB.First(&goal, "id = ? AND user_id = ?", uri.ID.UUID, user.ID).Error
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}
