package proto

import (
	"encoding/json"
	"fmt"
)

// Command is the closed set of inbound client commands. Decoding happens on
// the session read goroutine; handlers consume already-typed values on the
// game loop, with exhaustive matching over the variants below.
type Command interface{ isCommand() }

type SetName struct {
	Name string `json:"name"`
}

// Input carries the held movement keys.
type Input struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Aim is a shared payload shape: either a unit direction (aimDirX/aimDirY)
// or a world-space point (aimX/aimY) the server turns into a direction.
type Aim struct {
	DirX float64 `json:"aimDirX"`
	DirY float64 `json:"aimDirY"`
	X    float64 `json:"aimX"`
	Y    float64 `json:"aimY"`
}

// HasDir reports whether the client supplied an explicit direction.
func (a Aim) HasDir() bool { return a.DirX != 0 || a.DirY != 0 }

type Attack struct {
	Aim
}

type Skill1Arm struct{}

type Skill1Cast struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Skill2DoubleStab struct {
	Aim
}

type InvClick struct {
	Slot int `json:"slot"`
}

type UseItem struct {
	Slot int `json:"slot"`
}

type Unequip struct {
	Slot string `json:"slot"`
}

type EditTile struct {
	Layer string `json:"layer"` // "ground" or "deco"
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Tile  int    `json:"tile"`
}

type Portal struct{}

type Interact struct {
	NpcID int64 `json:"npcId"`
}

func (SetName) isCommand()          {}
func (Input) isCommand()            {}
func (Attack) isCommand()           {}
func (Skill1Arm) isCommand()        {}
func (Skill1Cast) isCommand()       {}
func (Skill2DoubleStab) isCommand() {}
func (InvClick) isCommand()         {}
func (UseItem) isCommand()          {}
func (Unequip) isCommand()          {}
func (EditTile) isCommand()         {}
func (Portal) isCommand()           {}
func (Interact) isCommand()         {}

type envelope struct {
	Type string `json:"type"`
}

// Decode parses one inbound frame into a typed command. Unknown types and
// malformed payloads return an error; the caller drops them silently.
func Decode(raw []byte) (Command, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("bad envelope: %w", err)
	}
	decode := func(v Command) (Command, error) {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, fmt.Errorf("bad %s payload: %w", env.Type, err)
		}
		return v, nil
	}
	switch env.Type {
	case "setName":
		c, err := decode(&SetName{})
		return deref(c, err)
	case "input":
		c, err := decode(&Input{})
		return deref(c, err)
	case "attack":
		c, err := decode(&Attack{})
		return deref(c, err)
	case "skill1Arm":
		return Skill1Arm{}, nil
	case "skill1Cast":
		c, err := decode(&Skill1Cast{})
		return deref(c, err)
	case "skill2DoubleStab":
		c, err := decode(&Skill2DoubleStab{})
		return deref(c, err)
	case "invClick":
		c, err := decode(&InvClick{})
		return deref(c, err)
	case "useItem":
		c, err := decode(&UseItem{})
		return deref(c, err)
	case "unequip":
		c, err := decode(&Unequip{})
		return deref(c, err)
	case "editTile":
		c, err := decode(&EditTile{})
		return deref(c, err)
	case "portal":
		return Portal{}, nil
	case "interact":
		c, err := decode(&Interact{})
		return deref(c, err)
	default:
		return nil, fmt.Errorf("unknown command type %q", env.Type)
	}
}

// deref unwraps the pointer produced by decode so handlers can match on
// value types.
func deref(c Command, err error) (Command, error) {
	if err != nil {
		return nil, err
	}
	switch v := c.(type) {
	case *SetName:
		return *v, nil
	case *Input:
		return *v, nil
	case *Attack:
		return *v, nil
	case *Skill1Cast:
		return *v, nil
	case *Skill2DoubleStab:
		return *v, nil
	case *InvClick:
		return *v, nil
	case *UseItem:
		return *v, nil
	case *Unequip:
		return *v, nil
	case *EditTile:
		return *v, nil
	case *Interact:
		return *v, nil
	default:
		return c, nil
	}
}
