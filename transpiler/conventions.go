// This file documents the per-tag layout of Children/TypeID/Extras
// that every lowering function in this package assumes. It is the
// concrete shape the upstream AST-dump deserializer is expected to
// populate; astctx itself stays tag-agnostic, so the layout lives
// here, next to the code that reads it.
//
//	FunctionDecl    Extras[0]=name(string). Children[0]=body(CompoundStmt,
//	                optional); Children[1:]=ParmVarDecl ids.
//	ParmVarDecl     Extras[0]=name(string). TypeID=param type.
//	VarDecl         Extras[0]=name(string). TypeID=var type.
//	                Children[0]=initializer expr (optional).
//	TypedefDecl     Extras[0]=name(string). TypeID=underlying type.
//	RecordDecl      Extras[0]=name(string). Children=FieldDecl ids in order.
//	FieldDecl       Extras[0]=name(string). TypeID=field type.
//
//	CompoundStmt    Children=statement ids in order.
//	NullStmt        no children.
//	DeclStmt        Children=decl ids.
//	ReturnStmt      Children[0]=expr (optional).
//	IfStmt          Children[0]=cond expr, [1]=then stmt, [2]=else stmt (optional).
//	WhileStmt       Children[0]=cond expr, [1]=body stmt.
//	DoStmt          Children[0]=body stmt, [1]=cond expr.
//	ForStmt         Children[0]=init stmt (optional), [1]=cond expr (optional),
//	                [2]=increment expr (optional), [3]=body stmt.
//
//	DeclRefExpr        Extras[0]=referenced C name(string). TypeID=expr type.
//	IntegerLiteral     Extras[0]=value(u64). TypeID=expr type.
//	CharacterLiteral   Extras[0]=value(u64). TypeID=expr type.
//	FloatingLiteral    Extras[0]=value(f64). TypeID=expr type.
//	ImplicitCastExpr   Children[0]=operand. TypeID=cast-to type.
//	CStyleCastExpr     Children[0]=operand. TypeID=cast-to type.
//	UnaryOperator      Extras[0]=spelling(string), Extras[1]=is_prefix(u64 0/1).
//	                   Children[0]=operand. TypeID=result type.
//	BinaryOperator     Extras[0]=spelling(string), includes "=" and the
//	                   compound "op=" spellings. Children[0]=lhs, [1]=rhs.
//	                   TypeID=result type.
//	CallExpr           Children[0]=callee, Children[1:]=args.
//	MemberExpr         Extras[0]=field name(string), Extras[1]=is_arrow(u64 0/1).
//	                   Children[0]=base expr. TypeID=expr type.
//	ArraySubscriptExpr Children[0]=base, Children[1]=index. TypeID=element type.
//	ParenExpr          Children[0]=inner expr. TypeID=expr type.
//	ConditionalOperator Children[0]=cond, [1]=then, [2]=else. TypeID=result type.
package transpiler
