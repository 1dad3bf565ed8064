package ports

//go:generate mockery --name PasswordHasher --dir . --output ../../../../mocks --outpkg mocks --filename PasswordHasher.go
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
