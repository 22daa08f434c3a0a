package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudokucore/api/internal/solver"
)

// solveHandler implements POST /solve: a JSON array of {grid, solver?} in,
// a JSON array of the same length out, each element either a solved result
// or an error body. One item's failure never aborts the batch.
func solveHandler(c *gin.Context) {
	var items []solveRequestItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"kind":    "MalformedRequest",
				"message": err.Error(),
			},
		})
		return
	}

	out := make([]solveResponseItem, len(items))
	for i, item := range items {
		result, err := solver.Solve(item.Grid, item.Solver)
		if err != nil {
			resp := toErrorResponse(err)
			out[i] = solveResponseItem{Error: &resp}
			continue
		}
		out[i] = solveResponseItem{
			Solution:  result.Solution,
			Solver:    result.Strategy,
			ElapsedNS: result.ElapsedNS,
		}
	}

	c.JSON(http.StatusOK, out)
}
