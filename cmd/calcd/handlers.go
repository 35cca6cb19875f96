package main

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/linecalc/linecalc"
)

type server struct {
	db  *gorm.DB
	log zerolog.Logger
}

type evalRequest struct {
	Expression string `json:"expression" binding:"required"`
}

func (s *server) addExpression(c *gin.Context) {
	var req evalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := Evaluation{
		Expression: req.Expression,
		Functions:  functionsUsed(req.Expression),
	}
	r, err := linecalc.EvalString(req.Expression)
	switch {
	case errors.Is(err, linecalc.ErrEmptyLine):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty expression"})
		return
	case err != nil:
		kind := linecalc.Classify(err)
		msg := err.Error()
		ev.Status = kind.String()
		ev.Error = &msg
		s.log.Info().Str("expression", req.Expression).Str("status", ev.Status).Msg("evaluation failed")
	default:
		ev.Status = "Completed"
		ev.Result = &r.Value
	}

	if err := s.db.Create(&ev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch ev.Status {
	case "Completed":
		c.JSON(http.StatusCreated, ev)
	case linecalc.KindUndefinedResult.String():
		c.JSON(http.StatusUnprocessableEntity, ev)
	default:
		c.JSON(http.StatusBadRequest, ev)
	}
}

func (s *server) listExpressions(c *gin.Context) {
	var evs []Evaluation
	if err := s.db.Order("created_at DESC").Find(&evs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, evs)
}

func (s *server) getExpression(c *gin.Context) {
	var ev Evaluation
	if err := s.db.First(&ev, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *server) listFunctions(c *gin.Context) {
	aliases := linecalc.Aliases()
	byName := make(map[string][]string)
	for alias, name := range aliases {
		byName[name] = append(byName[name], alias)
	}
	out := make([]gin.H, 0, len(byName))
	for name, as := range byName {
		sort.Strings(as)
		out = append(out, gin.H{"name": name, "aliases": as})
	}
	sort.Slice(out, func(i, j int) bool { return out[i]["name"].(string) < out[j]["name"].(string) })
	c.JSON(http.StatusOK, out)
}

// functionsUsed scans src for letter runs that resolve in the catalog and
// returns their canonical names, deduplicated and sorted.
func functionsUsed(src string) pq.StringArray {
	isLetter := func(b byte) bool {
		return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
	}
	seen := make(map[string]bool)
	for i := 0; i < len(src); {
		if !isLetter(src[i]) {
			i++
			continue
		}
		j := i
		for j < len(src) && isLetter(src[j]) {
			j++
		}
		if f, ok := linecalc.Resolve(src[i:j]); ok {
			seen[f.Name()] = true
		}
		i = j
	}
	out := make(pq.StringArray, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
