package domain

type User struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Hash      string `db:"password_hash"`
	Role      string `db:"role"`
	DOB       string `db:"date_of_birth"`
}
