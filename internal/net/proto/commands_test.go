package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVariants(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Command
	}{
		{"setName", `{"type":"setName","name":"Aria"}`, SetName{Name: "Aria"}},
		{"input", `{"type":"input","up":true,"left":true}`, Input{Up: true, Left: true}},
		{"attack with direction", `{"type":"attack","aimDirX":1,"aimDirY":0}`,
			Attack{Aim: Aim{DirX: 1}}},
		{"attack with point", `{"type":"attack","aimX":320,"aimY":240}`,
			Attack{Aim: Aim{X: 320, Y: 240}}},
		{"skill1Arm", `{"type":"skill1Arm"}`, Skill1Arm{}},
		{"skill1Cast", `{"type":"skill1Cast","x":100,"y":200}`, Skill1Cast{X: 100, Y: 200}},
		{"skill2", `{"type":"skill2DoubleStab","aimDirX":0,"aimDirY":-1}`,
			Skill2DoubleStab{Aim: Aim{DirY: -1}}},
		{"invClick", `{"type":"invClick","slot":3}`, InvClick{Slot: 3}},
		{"useItem", `{"type":"useItem","slot":0}`, UseItem{Slot: 0}},
		{"unequip", `{"type":"unequip","slot":"weapon"}`, Unequip{Slot: "weapon"}},
		{"editTile", `{"type":"editTile","layer":"ground","x":4,"y":5,"tile":8}`,
			EditTile{Layer: "ground", X: 4, Y: 5, Tile: 8}},
		{"portal", `{"type":"portal"}`, Portal{}},
		{"interact", `{"type":"interact","npcId":42}`, Interact{NpcID: 42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := Decode([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd)
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`{"type":"launchMissiles"}`,
		`{"type":"invClick","slot":"left"}`,
		`{}`,
	} {
		_, err := Decode([]byte(raw))
		assert.Error(t, err, "input: %s", raw)
	}
}

func TestAimHasDir(t *testing.T) {
	assert.True(t, Aim{DirX: 0.5}.HasDir())
	assert.False(t, Aim{X: 100, Y: 50}.HasDir())
}
