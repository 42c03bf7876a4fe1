package identity

import "strings"

type Role string

const (
	RoleLecturer Role = "dosen"
	RoleStudent  Role = "mahasiswa"
)

// lecturerPrefix marks staff NIMs. Everything else is a student NIM.
const lecturerPrefix = "99"

const (
	lecturerDomain = "dosen.univ.ac.id"
	studentDomain  = "student.univ.ac.id"
)

// Identity is the credential/role pair derived from a NIM.
type Identity struct {
	Credential string
	Role       Role
}

// Resolve maps a NIM to the synthetic email credential the authentication
// provider expects, and the role implied by the NIM prefix. Total for
// non-empty input; callers validate emptiness before calling.
func Resolve(nim string) Identity {
	if strings.HasPrefix(nim, lecturerPrefix) {
		return Identity{Credential: nim + "@" + lecturerDomain, Role: RoleLecturer}
	}
	return Identity{Credential: nim + "@" + studentDomain, Role: RoleStudent}
}
