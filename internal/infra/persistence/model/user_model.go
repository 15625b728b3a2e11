package model

// UserModel mirrors the 'usuarios' table.
type UserModel struct {
	ID       int64       `gorm:"primaryKey;autoIncrement"`
	Username string      `gorm:"type:varchar(20);uniqueIndex;not null"`
	Password string      `gorm:"type:varchar(60);not null"`
	Enabled  bool        `gorm:"not null"`
	Roles    []RoleModel `gorm:"many2many:usuarios_roles;joinForeignKey:UsuarioID;joinReferences:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"column:nombre;type:varchar(20);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
