package domain

// User represents a person using the app. There is no account system on top
// of this: the request layer resolves "the current user" from configuration.
type User struct {
	ID       int    `bson:"_id" json:"id"`
	Username string `bson:"username" json:"username"` // Should be unique
	Password string `bson:"password" json:"-"`        // Stored as given; never expose via JSON
	Age      int    `bson:"age" json:"age"`
	Name     string `bson:"name" json:"name"`
}

// UserPatch lists the user fields that can be changed after onboarding.
// Nil fields are left untouched by an update.
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// Apply merges the patch over the user, field by field.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
}
