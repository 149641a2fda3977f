package cst

// Visitor is the double-dispatch traversal protocol: Walk calls the matching
// VisitX hook before descending into a node's children, then the matching
// ExitX hook after. Defaults (via BaseVisitor) are no-ops; implementations
// override only the hooks they care about.
//
// Per spec §4.7, a handful of leaf/tag kinds are intentionally not
// traversed into — bare extents, operator enums, pointer mutability,
// numeric suffixes, field names on the identifier side — because a visitor
// gains no additional context from descending into them.
type Visitor interface {
	VisitFile(*File)
	ExitFile(*File)

	VisitAttribute(*Attribute)
	ExitAttribute(*Attribute)
	VisitConst(*Const)
	ExitConst(*Const)
	VisitStatic(*Static)
	ExitStatic(*Static)
	VisitExternCrate(*ExternCrate)
	ExitExternCrate(*ExternCrate)
	VisitExternBlock(*ExternBlock)
	ExitExternBlock(*ExternBlock)
	VisitModule(*Module)
	ExitModule(*Module)
	VisitUse(*Use)
	ExitUse(*Use)
	VisitFunction(*Function)
	ExitFunction(*Function)
	VisitStruct(*Struct)
	ExitStruct(*Struct)
	VisitEnum(*Enum)
	ExitEnum(*Enum)
	VisitEnumVariant(*EnumVariant)
	ExitEnumVariant(*EnumVariant)
	VisitTrait(*Trait)
	ExitTrait(*Trait)
	VisitImpl(*Impl)
	ExitImpl(*Impl)
	VisitAssociatedType(*AssociatedType)
	ExitAssociatedType(*AssociatedType)
	VisitTypeAlias(*TypeAlias)
	ExitTypeAlias(*TypeAlias)
	VisitMacroCall(*MacroCall)
	ExitMacroCall(*MacroCall)
	VisitMacroCallExpr(*MacroCallExpr)
	ExitMacroCallExpr(*MacroCallExpr)
	VisitWhitespaceRun(*WhitespaceRun)
	ExitWhitespaceRun(*WhitespaceRun)

	VisitBinary(*Binary)
	ExitBinary(*Binary)
	VisitUnary(*Unary)
	ExitUnary(*Unary)
	VisitCall(*Call)
	ExitCall(*Call)
	VisitFieldAccess(*FieldAccess)
	ExitFieldAccess(*FieldAccess)
	VisitSlice(*Slice)
	ExitSlice(*Slice)
	VisitRange(*Range)
	ExitRange(*Range)
	VisitBlock(*Block)
	ExitBlock(*Block)
	VisitUnsafeBlock(*UnsafeBlock)
	ExitUnsafeBlock(*UnsafeBlock)
	VisitIf(*If)
	ExitIf(*If)
	VisitIfLet(*IfLet)
	ExitIfLet(*IfLet)
	VisitWhile(*While)
	ExitWhile(*While)
	VisitWhileLet(*WhileLet)
	ExitWhileLet(*WhileLet)
	VisitFor(*For)
	ExitFor(*For)
	VisitLoop(*Loop)
	ExitLoop(*Loop)
	VisitMatch(*Match)
	ExitMatch(*Match)
	VisitMatchArm(*MatchArm)
	ExitMatchArm(*MatchArm)
	VisitClosure(*Closure)
	ExitClosure(*Closure)
	VisitStructLiteral(*StructLiteral)
	ExitStructLiteral(*StructLiteral)
	VisitStructLiteralField(*StructLiteralField)
	ExitStructLiteralField(*StructLiteralField)
	VisitTuple(*Tuple)
	ExitTuple(*Tuple)
	VisitParenthetical(*Parenthetical)
	ExitParenthetical(*Parenthetical)
	VisitArrayExplicit(*ArrayExplicit)
	ExitArrayExplicit(*ArrayExplicit)
	VisitArrayRepeated(*ArrayRepeated)
	ExitArrayRepeated(*ArrayRepeated)
	VisitLiteral(*Literal)
	ExitLiteral(*Literal)
	VisitAs(*As)
	ExitAs(*As)
	VisitTryOperator(*TryOperator)
	ExitTryOperator(*TryOperator)
	VisitReference(*Reference)
	ExitReference(*Reference)
	VisitDereference(*Dereference)
	ExitDereference(*Dereference)
	VisitBox(*Box)
	ExitBox(*Box)
	VisitLet(*Let)
	ExitLet(*Let)
	VisitReturn(*Return)
	ExitReturn(*Return)
	VisitBreak(*Break)
	ExitBreak(*Break)
	VisitContinue(*Continue)
	ExitContinue(*Continue)
	VisitDisambiguation(*Disambiguation)
	ExitDisambiguation(*Disambiguation)
	VisitValue(*Value)
	ExitValue(*Value)
	VisitExpressionStatement(*ExpressionStatement)
	ExitExpressionStatement(*ExpressionStatement)

	VisitTypeArray(*TypeArray)
	ExitTypeArray(*TypeArray)
	VisitTypeSlice(*TypeSlice)
	ExitTypeSlice(*TypeSlice)
	VisitTypeTuple(*TypeTuple)
	ExitTypeTuple(*TypeTuple)
	VisitTypePointer(*TypePointer)
	ExitTypePointer(*TypePointer)
	VisitTypeReference(*TypeReference)
	ExitTypeReference(*TypeReference)
	VisitTypeFunction(*TypeFunction)
	ExitTypeFunction(*TypeFunction)
	VisitTypeUninhabited(*TypeUninhabited)
	ExitTypeUninhabited(*TypeUninhabited)
	VisitTypeCombination(*TypeCombination)
	ExitTypeCombination(*TypeCombination)
	VisitTypeNamed(*TypeNamed)
	ExitTypeNamed(*TypeNamed)
	VisitTypeDisambiguation(*TypeDisambiguation)
	ExitTypeDisambiguation(*TypeDisambiguation)
	VisitTypeHigherRankedTraitBounds(*TypeHigherRankedTraitBounds)
	ExitTypeHigherRankedTraitBounds(*TypeHigherRankedTraitBounds)
	VisitTypeImplTrait(*TypeImplTrait)
	ExitTypeImplTrait(*TypeImplTrait)

	VisitBinder(*Binder)
	ExitBinder(*Binder)
	VisitPatternIdent(*PatternIdent)
	ExitPatternIdent(*PatternIdent)
	VisitPatternNumber(*PatternNumber)
	ExitPatternNumber(*PatternNumber)
	VisitPatternRange(*PatternRange)
	ExitPatternRange(*PatternRange)
	VisitPatternReference(*PatternReference)
	ExitPatternReference(*PatternReference)
	VisitPatternStruct(*PatternStruct)
	ExitPatternStruct(*PatternStruct)
	VisitPatternTuple(*PatternTuple)
	ExitPatternTuple(*PatternTuple)

	VisitIdent(*Ident)
	ExitIdent(*Ident)
	VisitLifetime(*Lifetime)
	ExitLifetime(*Lifetime)
	VisitWhitespace(*Whitespace)
	ExitWhitespace(*Whitespace)
}

// BaseVisitor implements Visitor with no-op defaults; embed it and override
// only the hooks a consumer needs.
type BaseVisitor struct{}

func (BaseVisitor) VisitFile(*File) {}
func (BaseVisitor) ExitFile(*File)  {}

func (BaseVisitor) VisitAttribute(*Attribute) {}
func (BaseVisitor) ExitAttribute(*Attribute)  {}
func (BaseVisitor) VisitConst(*Const)         {}
func (BaseVisitor) ExitConst(*Const)          {}
func (BaseVisitor) VisitStatic(*Static)       {}
func (BaseVisitor) ExitStatic(*Static)        {}
func (BaseVisitor) VisitExternCrate(*ExternCrate) {}
func (BaseVisitor) ExitExternCrate(*ExternCrate)  {}
func (BaseVisitor) VisitExternBlock(*ExternBlock) {}
func (BaseVisitor) ExitExternBlock(*ExternBlock)  {}
func (BaseVisitor) VisitModule(*Module)       {}
func (BaseVisitor) ExitModule(*Module)        {}
func (BaseVisitor) VisitUse(*Use)             {}
func (BaseVisitor) ExitUse(*Use)              {}
func (BaseVisitor) VisitFunction(*Function)   {}
func (BaseVisitor) ExitFunction(*Function)    {}
func (BaseVisitor) VisitStruct(*Struct)       {}
func (BaseVisitor) ExitStruct(*Struct)        {}
func (BaseVisitor) VisitEnum(*Enum)           {}
func (BaseVisitor) ExitEnum(*Enum)            {}
func (BaseVisitor) VisitEnumVariant(*EnumVariant) {}
func (BaseVisitor) ExitEnumVariant(*EnumVariant)  {}
func (BaseVisitor) VisitTrait(*Trait)         {}
func (BaseVisitor) ExitTrait(*Trait)          {}
func (BaseVisitor) VisitImpl(*Impl)           {}
func (BaseVisitor) ExitImpl(*Impl)            {}
func (BaseVisitor) VisitAssociatedType(*AssociatedType) {}
func (BaseVisitor) ExitAssociatedType(*AssociatedType)  {}
func (BaseVisitor) VisitTypeAlias(*TypeAlias) {}
func (BaseVisitor) ExitTypeAlias(*TypeAlias)  {}
func (BaseVisitor) VisitMacroCall(*MacroCall) {}
func (BaseVisitor) ExitMacroCall(*MacroCall)  {}
func (BaseVisitor) VisitMacroCallExpr(*MacroCallExpr) {}
func (BaseVisitor) ExitMacroCallExpr(*MacroCallExpr)  {}
func (BaseVisitor) VisitWhitespaceRun(*WhitespaceRun) {}
func (BaseVisitor) ExitWhitespaceRun(*WhitespaceRun)  {}

func (BaseVisitor) VisitBinary(*Binary)       {}
func (BaseVisitor) ExitBinary(*Binary)        {}
func (BaseVisitor) VisitUnary(*Unary)         {}
func (BaseVisitor) ExitUnary(*Unary)          {}
func (BaseVisitor) VisitCall(*Call)           {}
func (BaseVisitor) ExitCall(*Call)            {}
func (BaseVisitor) VisitFieldAccess(*FieldAccess) {}
func (BaseVisitor) ExitFieldAccess(*FieldAccess)  {}
func (BaseVisitor) VisitSlice(*Slice)         {}
func (BaseVisitor) ExitSlice(*Slice)          {}
func (BaseVisitor) VisitRange(*Range)         {}
func (BaseVisitor) ExitRange(*Range)          {}
func (BaseVisitor) VisitBlock(*Block)         {}
func (BaseVisitor) ExitBlock(*Block)          {}
func (BaseVisitor) VisitUnsafeBlock(*UnsafeBlock) {}
func (BaseVisitor) ExitUnsafeBlock(*UnsafeBlock)  {}
func (BaseVisitor) VisitIf(*If)               {}
func (BaseVisitor) ExitIf(*If)                {}
func (BaseVisitor) VisitIfLet(*IfLet)         {}
func (BaseVisitor) ExitIfLet(*IfLet)          {}
func (BaseVisitor) VisitWhile(*While)         {}
func (BaseVisitor) ExitWhile(*While)          {}
func (BaseVisitor) VisitWhileLet(*WhileLet)   {}
func (BaseVisitor) ExitWhileLet(*WhileLet)    {}
func (BaseVisitor) VisitFor(*For)             {}
func (BaseVisitor) ExitFor(*For)              {}
func (BaseVisitor) VisitLoop(*Loop)           {}
func (BaseVisitor) ExitLoop(*Loop)            {}
func (BaseVisitor) VisitMatch(*Match)         {}
func (BaseVisitor) ExitMatch(*Match)          {}
func (BaseVisitor) VisitMatchArm(*MatchArm)   {}
func (BaseVisitor) ExitMatchArm(*MatchArm)    {}
func (BaseVisitor) VisitClosure(*Closure)     {}
func (BaseVisitor) ExitClosure(*Closure)      {}
func (BaseVisitor) VisitStructLiteral(*StructLiteral) {}
func (BaseVisitor) ExitStructLiteral(*StructLiteral)  {}
func (BaseVisitor) VisitStructLiteralField(*StructLiteralField) {}
func (BaseVisitor) ExitStructLiteralField(*StructLiteralField)  {}
func (BaseVisitor) VisitTuple(*Tuple)         {}
func (BaseVisitor) ExitTuple(*Tuple)          {}
func (BaseVisitor) VisitParenthetical(*Parenthetical) {}
func (BaseVisitor) ExitParenthetical(*Parenthetical)  {}
func (BaseVisitor) VisitArrayExplicit(*ArrayExplicit) {}
func (BaseVisitor) ExitArrayExplicit(*ArrayExplicit)  {}
func (BaseVisitor) VisitArrayRepeated(*ArrayRepeated) {}
func (BaseVisitor) ExitArrayRepeated(*ArrayRepeated)  {}
func (BaseVisitor) VisitLiteral(*Literal)     {}
func (BaseVisitor) ExitLiteral(*Literal)      {}
func (BaseVisitor) VisitAs(*As)               {}
func (BaseVisitor) ExitAs(*As)                {}
func (BaseVisitor) VisitTryOperator(*TryOperator) {}
func (BaseVisitor) ExitTryOperator(*TryOperator)  {}
func (BaseVisitor) VisitReference(*Reference) {}
func (BaseVisitor) ExitReference(*Reference)  {}
func (BaseVisitor) VisitDereference(*Dereference) {}
func (BaseVisitor) ExitDereference(*Dereference)  {}
func (BaseVisitor) VisitBox(*Box)             {}
func (BaseVisitor) ExitBox(*Box)              {}
func (BaseVisitor) VisitLet(*Let)             {}
func (BaseVisitor) ExitLet(*Let)              {}
func (BaseVisitor) VisitReturn(*Return)       {}
func (BaseVisitor) ExitReturn(*Return)        {}
func (BaseVisitor) VisitBreak(*Break)         {}
func (BaseVisitor) ExitBreak(*Break)          {}
func (BaseVisitor) VisitContinue(*Continue)   {}
func (BaseVisitor) ExitContinue(*Continue)    {}
func (BaseVisitor) VisitDisambiguation(*Disambiguation) {}
func (BaseVisitor) ExitDisambiguation(*Disambiguation)  {}
func (BaseVisitor) VisitValue(*Value)         {}
func (BaseVisitor) ExitValue(*Value)          {}
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) {}
func (BaseVisitor) ExitExpressionStatement(*ExpressionStatement)  {}

func (BaseVisitor) VisitTypeArray(*TypeArray) {}
func (BaseVisitor) ExitTypeArray(*TypeArray)  {}
func (BaseVisitor) VisitTypeSlice(*TypeSlice) {}
func (BaseVisitor) ExitTypeSlice(*TypeSlice)  {}
func (BaseVisitor) VisitTypeTuple(*TypeTuple) {}
func (BaseVisitor) ExitTypeTuple(*TypeTuple)  {}
func (BaseVisitor) VisitTypePointer(*TypePointer) {}
func (BaseVisitor) ExitTypePointer(*TypePointer)  {}
func (BaseVisitor) VisitTypeReference(*TypeReference) {}
func (BaseVisitor) ExitTypeReference(*TypeReference)  {}
func (BaseVisitor) VisitTypeFunction(*TypeFunction) {}
func (BaseVisitor) ExitTypeFunction(*TypeFunction)  {}
func (BaseVisitor) VisitTypeUninhabited(*TypeUninhabited) {}
func (BaseVisitor) ExitTypeUninhabited(*TypeUninhabited)  {}
func (BaseVisitor) VisitTypeCombination(*TypeCombination) {}
func (BaseVisitor) ExitTypeCombination(*TypeCombination)  {}
func (BaseVisitor) VisitTypeNamed(*TypeNamed) {}
func (BaseVisitor) ExitTypeNamed(*TypeNamed)  {}
func (BaseVisitor) VisitTypeDisambiguation(*TypeDisambiguation) {}
func (BaseVisitor) ExitTypeDisambiguation(*TypeDisambiguation)  {}
func (BaseVisitor) VisitTypeHigherRankedTraitBounds(*TypeHigherRankedTraitBounds) {}
func (BaseVisitor) ExitTypeHigherRankedTraitBounds(*TypeHigherRankedTraitBounds)  {}
func (BaseVisitor) VisitTypeImplTrait(*TypeImplTrait) {}
func (BaseVisitor) ExitTypeImplTrait(*TypeImplTrait)  {}

func (BaseVisitor) VisitBinder(*Binder)       {}
func (BaseVisitor) ExitBinder(*Binder)        {}
func (BaseVisitor) VisitPatternIdent(*PatternIdent) {}
func (BaseVisitor) ExitPatternIdent(*PatternIdent)  {}
func (BaseVisitor) VisitPatternNumber(*PatternNumber) {}
func (BaseVisitor) ExitPatternNumber(*PatternNumber)  {}
func (BaseVisitor) VisitPatternRange(*PatternRange) {}
func (BaseVisitor) ExitPatternRange(*PatternRange)  {}
func (BaseVisitor) VisitPatternReference(*PatternReference) {}
func (BaseVisitor) ExitPatternReference(*PatternReference)  {}
func (BaseVisitor) VisitPatternStruct(*PatternStruct) {}
func (BaseVisitor) ExitPatternStruct(*PatternStruct)  {}
func (BaseVisitor) VisitPatternTuple(*PatternTuple) {}
func (BaseVisitor) ExitPatternTuple(*PatternTuple)  {}

func (BaseVisitor) VisitIdent(*Ident)         {}
func (BaseVisitor) ExitIdent(*Ident)          {}
func (BaseVisitor) VisitLifetime(*Lifetime)   {}
func (BaseVisitor) ExitLifetime(*Lifetime)    {}
func (BaseVisitor) VisitWhitespace(*Whitespace) {}
func (BaseVisitor) ExitWhitespace(*Whitespace)  {}

// Walk performs a pre/post-order structural traversal of n, invoking the
// matching enter/exit hooks on v and recursing into children (descending
// into containers and optionals, per spec §4.7).
func Walk(n Node, v Visitor) {
	if n == nil {
		return
	}
	switch t := n.(type) {
	case *File:
		v.VisitFile(t)
		for _, it := range t.Items {
			Walk(it, v)
		}
		v.ExitFile(t)

	case *Attribute:
		v.VisitAttribute(t)
		v.ExitAttribute(t)
	case *Const:
		v.VisitConst(t)
		Walk(t.Type, v)
		Walk(t.Value, v)
		v.ExitConst(t)
	case *Static:
		v.VisitStatic(t)
		Walk(t.Type, v)
		Walk(t.Value, v)
		v.ExitStatic(t)
	case *ExternCrate:
		v.VisitExternCrate(t)
		v.ExitExternCrate(t)
	case *ExternBlock:
		v.VisitExternBlock(t)
		v.ExitExternBlock(t)
	case *Module:
		v.VisitModule(t)
		for _, it := range t.Items {
			Walk(it, v)
		}
		v.ExitModule(t)
	case *Use:
		v.VisitUse(t)
		v.ExitUse(t)
	case *Function:
		v.VisitFunction(t)
		for _, a := range t.Arguments {
			Walk(a.Type, v)
		}
		Walk(t.ReturnType, v)
		if t.Body != nil {
			Walk(t.Body, v)
		}
		v.ExitFunction(t)
	case *Struct:
		v.VisitStruct(t)
		walkStructBody(t.Body, v)
		v.ExitStruct(t)
	case *Enum:
		v.VisitEnum(t)
		for _, variant := range t.Variants {
			Walk(variant, v)
		}
		v.ExitEnum(t)
	case *EnumVariant:
		v.VisitEnumVariant(t)
		switch body := t.Body.(type) {
		case *StructDefinitionBodyBrace:
			walkStructBody(body, v)
		case *StructDefinitionBodyTuple:
			walkStructBody(body, v)
		}
		v.ExitEnumVariant(t)
	case *Trait:
		v.VisitTrait(t)
		for _, m := range t.Members {
			Walk(m, v)
		}
		v.ExitTrait(t)
	case *Impl:
		v.VisitImpl(t)
		Walk(t.OfTrait, v)
		Walk(t.Type, v)
		for _, m := range t.Members {
			Walk(m, v)
		}
		v.ExitImpl(t)
	case *AssociatedType:
		v.VisitAssociatedType(t)
		Walk(t.Value, v)
		v.ExitAssociatedType(t)
	case *TypeAlias:
		v.VisitTypeAlias(t)
		Walk(t.Value, v)
		v.ExitTypeAlias(t)
	case *MacroCall:
		v.VisitMacroCall(t)
		v.ExitMacroCall(t)
	case *MacroCallExpr:
		v.VisitMacroCallExpr(t)
		v.ExitMacroCallExpr(t)
	case *WhitespaceRun:
		v.VisitWhitespaceRun(t)
		v.ExitWhitespaceRun(t)

	case *Binary:
		v.VisitBinary(t)
		Walk(t.LHS, v)
		Walk(t.RHS, v)
		v.ExitBinary(t)
	case *Unary:
		v.VisitUnary(t)
		Walk(t.Operand, v)
		v.ExitUnary(t)
	case *Call:
		v.VisitCall(t)
		Walk(t.Target, v)
		for _, a := range t.Args {
			Walk(a, v)
		}
		v.ExitCall(t)
	case *FieldAccess:
		v.VisitFieldAccess(t)
		Walk(t.Target, v)
		v.ExitFieldAccess(t)
	case *Slice:
		v.VisitSlice(t)
		Walk(t.Target, v)
		Walk(t.Index, v)
		v.ExitSlice(t)
	case *Range:
		v.VisitRange(t)
		if t.LHS != nil {
			Walk(t.LHS, v)
		}
		if t.RHS != nil {
			Walk(t.RHS, v)
		}
		v.ExitRange(t)
	case *Block:
		v.VisitBlock(t)
		for _, s := range t.Statements {
			Walk(s, v)
		}
		if t.Trailing != nil {
			Walk(t.Trailing, v)
		}
		v.ExitBlock(t)
	case *UnsafeBlock:
		v.VisitUnsafeBlock(t)
		Walk(t.Body, v)
		v.ExitUnsafeBlock(t)
	case *If:
		v.VisitIf(t)
		Walk(t.Condition, v)
		Walk(t.Then, v)
		if t.Else != nil {
			Walk(t.Else, v)
		}
		v.ExitIf(t)
	case *IfLet:
		v.VisitIfLet(t)
		Walk(t.Value, v)
		Walk(t.Then, v)
		if t.Else != nil {
			Walk(t.Else, v)
		}
		v.ExitIfLet(t)
	case *While:
		v.VisitWhile(t)
		Walk(t.Condition, v)
		Walk(t.Body, v)
		v.ExitWhile(t)
	case *WhileLet:
		v.VisitWhileLet(t)
		Walk(t.Value, v)
		Walk(t.Body, v)
		v.ExitWhileLet(t)
	case *For:
		v.VisitFor(t)
		Walk(t.Source, v)
		Walk(t.Body, v)
		v.ExitFor(t)
	case *Loop:
		v.VisitLoop(t)
		Walk(t.Body, v)
		v.ExitLoop(t)
	case *Match:
		v.VisitMatch(t)
		Walk(t.Head, v)
		for _, arm := range t.Arms {
			Walk(arm, v)
		}
		v.ExitMatch(t)
	case *MatchArm:
		v.VisitMatchArm(t)
		if t.Guard != nil {
			Walk(t.Guard, v)
		}
		Walk(t.Body, v)
		v.ExitMatchArm(t)
	case *Closure:
		v.VisitClosure(t)
		Walk(t.ReturnType, v)
		Walk(t.Body, v)
		v.ExitClosure(t)
	case *StructLiteral:
		v.VisitStructLiteral(t)
		for _, f := range t.Fields {
			Walk(f, v)
		}
		if t.Splat != nil {
			Walk(t.Splat, v)
		}
		v.ExitStructLiteral(t)
	case *StructLiteralField:
		v.VisitStructLiteralField(t)
		Walk(t.Value, v)
		v.ExitStructLiteralField(t)
	case *Tuple:
		v.VisitTuple(t)
		for _, m := range t.Members {
			Walk(m, v)
		}
		v.ExitTuple(t)
	case *Parenthetical:
		v.VisitParenthetical(t)
		Walk(t.Inner, v)
		v.ExitParenthetical(t)
	case *ArrayExplicit:
		v.VisitArrayExplicit(t)
		for _, it := range t.Items {
			Walk(it, v)
		}
		v.ExitArrayExplicit(t)
	case *ArrayRepeated:
		v.VisitArrayRepeated(t)
		Walk(t.Value, v)
		Walk(t.Count, v)
		v.ExitArrayRepeated(t)
	case *Literal:
		v.VisitLiteral(t)
		v.ExitLiteral(t)
	case *As:
		v.VisitAs(t)
		Walk(t.Value, v)
		Walk(t.Type, v)
		v.ExitAs(t)
	case *TryOperator:
		v.VisitTryOperator(t)
		Walk(t.Value, v)
		v.ExitTryOperator(t)
	case *Reference:
		v.VisitReference(t)
		Walk(t.Value, v)
		v.ExitReference(t)
	case *Dereference:
		v.VisitDereference(t)
		Walk(t.Value, v)
		v.ExitDereference(t)
	case *Box:
		v.VisitBox(t)
		Walk(t.Value, v)
		v.ExitBox(t)
	case *Let:
		v.VisitLet(t)
		Walk(t.Type, v)
		Walk(t.Value, v)
		v.ExitLet(t)
	case *Return:
		v.VisitReturn(t)
		if t.Value != nil {
			Walk(t.Value, v)
		}
		v.ExitReturn(t)
	case *Break:
		v.VisitBreak(t)
		if t.Value != nil {
			Walk(t.Value, v)
		}
		v.ExitBreak(t)
	case *Continue:
		v.VisitContinue(t)
		v.ExitContinue(t)
	case *Disambiguation:
		v.VisitDisambiguation(t)
		Walk(t.Type, v)
		Walk(t.Trait, v)
		v.ExitDisambiguation(t)
	case *Value:
		v.VisitValue(t)
		v.ExitValue(t)
	case *ExpressionStatement:
		v.VisitExpressionStatement(t)
		Walk(t.Expression, v)
		v.ExitExpressionStatement(t)

	case *TypeArray:
		v.VisitTypeArray(t)
		Walk(t.Element, v)
		Walk(t.Count, v)
		v.ExitTypeArray(t)
	case *TypeSlice:
		v.VisitTypeSlice(t)
		Walk(t.Element, v)
		v.ExitTypeSlice(t)
	case *TypeTuple:
		v.VisitTypeTuple(t)
		for _, m := range t.Members {
			Walk(m, v)
		}
		v.ExitTypeTuple(t)
	case *TypePointer:
		v.VisitTypePointer(t)
		Walk(t.Inner, v)
		v.ExitTypePointer(t)
	case *TypeReference:
		v.VisitTypeReference(t)
		Walk(t.Inner, v)
		v.ExitTypeReference(t)
	case *TypeFunction:
		v.VisitTypeFunction(t)
		for _, a := range t.Arguments {
			Walk(a, v)
		}
		Walk(t.Return, v)
		v.ExitTypeFunction(t)
	case *TypeUninhabited:
		v.VisitTypeUninhabited(t)
		v.ExitTypeUninhabited(t)
	case *TypeCombination:
		v.VisitTypeCombination(t)
		Walk(t.Base, v)
		for _, a := range t.Additions {
			Walk(a, v)
		}
		v.ExitTypeCombination(t)
	case *TypeNamed:
		v.VisitTypeNamed(t)
		v.ExitTypeNamed(t)
	case *TypeDisambiguation:
		v.VisitTypeDisambiguation(t)
		Walk(t.Type, v)
		Walk(t.Trait, v)
		v.ExitTypeDisambiguation(t)
	case *TypeHigherRankedTraitBounds:
		v.VisitTypeHigherRankedTraitBounds(t)
		Walk(t.Child, v)
		v.ExitTypeHigherRankedTraitBounds(t)
	case *TypeImplTrait:
		v.VisitTypeImplTrait(t)
		v.ExitTypeImplTrait(t)

	case *Binder:
		v.VisitBinder(t)
		Walk(t.Kind, v)
		v.ExitBinder(t)
	case *PatternIdent:
		v.VisitPatternIdent(t)
		v.ExitPatternIdent(t)
	case *PatternNumber:
		v.VisitPatternNumber(t)
		v.ExitPatternNumber(t)
	case *PatternRange:
		v.VisitPatternRange(t)
		v.ExitPatternRange(t)
	case *PatternReference:
		v.VisitPatternReference(t)
		Walk(t.Inner, v)
		v.ExitPatternReference(t)
	case *PatternStruct:
		v.VisitPatternStruct(t)
		for _, f := range t.Fields {
			if f.Subpattern != nil {
				Walk(f.Subpattern, v)
			}
		}
		v.ExitPatternStruct(t)
	case *PatternTuple:
		v.VisitPatternTuple(t)
		for _, m := range t.Members {
			if p := UnwrapTuplePattern(m); p != nil {
				Walk(p, v)
			}
		}
		v.ExitPatternTuple(t)
	case *PatternByte, *PatternByteString, *PatternCharacter, *PatternString:
		// Leaf pattern kinds carry no children worth descending into.

	case *Ident:
		v.VisitIdent(t)
		v.ExitIdent(t)
	case *Lifetime:
		v.VisitLifetime(t)
		v.ExitLifetime(t)
	case *Whitespace:
		v.VisitWhitespace(t)
		v.ExitWhitespace(t)
	}
}

func walkStructBody(body StructDefinitionBody, v Visitor) {
	switch b := body.(type) {
	case *StructDefinitionBodyBrace:
		for _, f := range b.Fields {
			Walk(f.Type, v)
		}
	case *StructDefinitionBodyTuple:
		for _, f := range b.Fields {
			Walk(f.Type, v)
		}
	}
}
