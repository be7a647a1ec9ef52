package videopoker

// inbound action names
const (
	ActionBetOne      = "bet-one"
	ActionBetMax      = "bet-max"
	ActionDeal        = "deal"
	ActionAddMoney    = "add-money"
	ActionChangeDenom = "change-denom"
	ActionHold        = "hold"
)

// ActionIn is an inbound action payload from an input source
type ActionIn struct {
	Action string `json:"action"`

	// Delta is the denomination step for a change-denom action
	Delta int `json:"delta"`

	// Slot is the hand slot for a hold action
	Slot int `json:"slot"`
}
