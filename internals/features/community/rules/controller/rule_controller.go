package controller

import (
	"github.com/gofiber/fiber/v2"

	ruleModel "quanlycanho_backend/internals/features/community/rules/model"
	helper "quanlycanho_backend/internals/helpers"
	"quanlycanho_backend/internals/seeds"
)

type RuleController struct {
	rules []ruleModel.RuleModel
}

func NewRuleController(store *seeds.Store) *RuleController {
	return &RuleController{rules: store.Rules()}
}

// 🟢 GET /api/u/rules — nội quy áp dụng chung cho mọi role.
func (ctrl *RuleController) List(c *fiber.Ctx) error {
	return helper.JsonList(c, "Nội quy & quy định", ctrl.rules)
}
