package ast

type (
	// главные сущности
	FileID uint32
	ItemID uint32
	StmtID uint32
	ExprID uint32
	TypeID uint32
	ArmID  uint32
	// подсущности
	PayloadID uint32
	FnParamID uint32
)

const (
	NoFileID    FileID    = 0
	NoItemID    ItemID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoArmID     ArmID     = 0
	NoPayloadID PayloadID = 0
	NoFnParamID FnParamID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id ItemID) IsValid() bool    { return id != NoItemID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
func (id ArmID) IsValid() bool     { return id != NoArmID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id FnParamID) IsValid() bool { return id != NoFnParamID }
