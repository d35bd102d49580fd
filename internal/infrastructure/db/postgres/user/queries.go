package user

const (
	SelectUserByID = `
		SELECT id, first_name, last_name, email, hashed_password, is_active, created_at, updated_at
		FROM users
		WHERE id = $1 AND is_active = TRUE
	`
	SelectUserByEmail = `
		SELECT id, first_name, last_name, email, hashed_password, is_active, created_at, updated_at
		FROM users
		WHERE email = $1 AND is_active = TRUE
	`
	InsertUser = `
		INSERT INTO users (id, first_name, last_name, email, hashed_password, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, first_name, last_name, email, hashed_password, is_active, created_at, updated_at
	`
	// NULL parameters keep the current column value.
	UpdateUserByID = `
		UPDATE users
		SET first_name = COALESCE($1, first_name),
		    last_name = COALESCE($2, last_name),
		    email = COALESCE($3, email),
		    updated_at = now()
		WHERE id = $4 AND is_active = TRUE
		RETURNING id
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET is_active = FALSE,
		    updated_at = now()
		WHERE id = $1 AND is_active = TRUE
		RETURNING id
	`
)
