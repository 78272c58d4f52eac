package event

const MemberRegisteredDestination string = "member_registered"

type MemberRegisteredMessage struct {
	MemberID int64  `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
