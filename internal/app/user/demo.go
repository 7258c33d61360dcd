package user

import "crypto/subtle"

type demoAccount struct {
	password string
	record   User
}

// demoAccounts is the complete allow-list, keyed by email.
var demoAccounts = map[string]demoAccount{
	"fresher@demo.com": {
		password: "Demo123",
		record: User{
			ID:                "fresher1",
			Email:             "fresher@demo.com",
			Name:              "Alex Kumar",
			Role:              RoleFresher,
			Avatar:            "👨‍🎓",
			College:           "GLA University",
			JoinedCommunities: []string{"gla"},
			Projects:          []string{"iot-parking"},
		},
	},
	"mentor@demo.com": {
		password: "Mentor123",
		record: User{
			ID:                "mentor1",
			Email:             "mentor@demo.com",
			Name:              "Dr. Sarah Wilson",
			Role:              RoleMentor,
			Avatar:            "👩‍🏫",
			College:           "IIT Delhi",
			JoinedCommunities: []string{"iit-delhi"},
			Projects:          []string{"ai-resume"},
		},
	},
}

// Authenticate returns a copy of the demo record matching email and password.
// Matching is exact: no trimming or case folding.
func Authenticate(email, password string) (User, error) {
	account, ok := demoAccounts[email]
	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(account.password), []byte(password)) != 1 {
		return User{}, ErrInvalidCredentials
	}

	return account.record.Clone(), nil
}

// DemoHint is shown next to the login form.
type DemoHint struct {
	Role     Role   `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DemoHints lists the demo credentials in a stable order (fresher first).
func DemoHints() []DemoHint {
	return []DemoHint{
		{Role: RoleFresher, Email: "fresher@demo.com", Password: demoAccounts["fresher@demo.com"].password},
		{Role: RoleMentor, Email: "mentor@demo.com", Password: demoAccounts["mentor@demo.com"].password},
	}
}
