package cache

// Mutation names a state-changing operation against the backend
type Mutation string

const (
	CreateItem    Mutation = "create-item"
	CreateRental  Mutation = "create-rental"
	ApproveRental Mutation = "approve-rental"
	VerifyPickup  Mutation = "verify-pickup"
	VerifyReturn  Mutation = "verify-return"
	SendMessage   Mutation = "send-message"
	CreateReview  Mutation = "create-review"
)

// Invalidates lists the collections each mutation makes stale. Messages is
// handled per rental by AfterSendMessage.
var Invalidates = map[Mutation][]Collection{
	CreateItem:    {Items, MyItems},
	CreateRental:  {MyRentals, Items},
	ApproveRental: {MyRentals, Earnings},
	VerifyPickup:  {MyRentals, Earnings},
	VerifyReturn:  {MyRentals, Earnings},
	CreateReview:  {MyRentals},
}

// Apply drops everything m invalidates. Call it only after m succeeded.
func (c *Cache) Apply(m Mutation) {
	cols := Invalidates[m]
	keys := make([]Key, len(cols))
	for i, col := range cols {
		keys[i] = KeyOf(col)
	}
	c.Invalidate(keys...)
}

// AfterSendMessage drops the conversation a message was sent to
func (c *Cache) AfterSendMessage(rentalID int64) {
	c.Invalidate(MessagesFor(rentalID))
}
