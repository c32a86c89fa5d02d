package handler

import (
	"github.com/riptide/server/internal/net/proto"
	"github.com/riptide/server/internal/world"
	"go.uber.org/zap"
)

// Dispatch routes a decoded command to its handler. The switch is exhaustive
// over the closed command set; an unknown variant is a programming error and
// is logged rather than silently ignored.
func Dispatch(d *Deps, p *world.Player, cmd proto.Command) {
	switch c := cmd.(type) {
	case proto.SetName:
		HandleSetName(d, p, c)
	case proto.Input:
		HandleInput(d, p, c)
	case proto.Attack:
		HandleAttack(d, p, c)
	case proto.Skill1Arm:
		HandleSkill1Arm(d, p, c)
	case proto.Skill1Cast:
		HandleSkill1Cast(d, p, c)
	case proto.Skill2DoubleStab:
		HandleSkill2DoubleStab(d, p, c)
	case proto.InvClick:
		HandleInvClick(d, p, c)
	case proto.UseItem:
		HandleUseItem(d, p, c)
	case proto.Unequip:
		HandleUnequip(d, p, c)
	case proto.EditTile:
		HandleEditTile(d, p, c)
	case proto.Portal:
		HandlePortal(d, p, c)
	case proto.Interact:
		HandleInteract(d, p, c)
	default:
		d.Log.Error("unhandled command variant",
			zap.Uint64("player", p.ID),
			zap.Any("command", cmd))
	}
}
